package dispatcher

import (
	"context"

	"hospitality-concierge/internal/model"
	pkgLog "hospitality-concierge/pkg/log"
)

// Handler is one category's sub-dialogue. Multiturn handlers run the
// slot-filling loop across turns; single-turn handlers answer immediately
// and never become the active category.
type Handler interface {
	Handle(ctx context.Context, sess *model.Session, userText string) (string, error)
	Multiturn() bool
}

// Dispatcher routes classified intents to category handlers. It is the only
// component allowed to write Session.ActiveCategory.
type Dispatcher struct {
	handlers map[model.Category]Handler
	l        pkgLog.Logger
}

// New creates an empty Dispatcher.
func New(l pkgLog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[model.Category]Handler),
		l:        l,
	}
}

// Register binds a category to its handler. Registering the indeterminate
// category is ignored: it always resolves to the fallback reply.
func (d *Dispatcher) Register(cat model.Category, h Handler) {
	if cat == model.CategoryIndeterminate {
		return
	}
	d.handlers[cat] = h
}
