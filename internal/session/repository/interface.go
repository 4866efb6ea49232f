package repository

import (
	"context"

	"hospitality-concierge/internal/model"
)

// Repository persists session records keyed by guest identifier.
//
// Load has read-with-create-on-miss semantics: an identifier with no stored
// record yields a fresh default session, already persisted. Save upserts.
// Durability is at most once: the caller proceeds with its in-memory state
// when a Save fails.
type Repository interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
}
