package session

import "hospitality-concierge/internal/model"

// ChatInput is one inbound guest message.
type ChatInput struct {
	Message string
}

// ChatOutput is the reply produced for one inbound message.
type ChatOutput struct {
	Reply    string
	Language string
	Category model.Category // active category after the turn, if any
}
