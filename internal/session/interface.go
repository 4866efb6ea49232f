package session

import (
	"context"

	"hospitality-concierge/internal/model"
)

// UseCase defines the business logic interface for the concierge session domain.
type UseCase interface {
	// Chat processes one inbound guest message and returns the reply:
	// load session, classify, dispatch, append the turn and persist.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
