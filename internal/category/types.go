package category

import (
	"context"

	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	pkgLog "hospitality-concierge/pkg/log"
)

// completion produces the final reply once every required slot of a
// category is filled. Deterministic given identical slots and catalog
// results.
type completion func(ctx context.Context, sess *model.Session, slots map[string]string) (string, error)

// slotHandler runs the shared slot-filling loop for one category and hands
// the completed slots to the category's completion action. Slots are never
// reset after completion, so a later correction re-enters the loop with the
// previous values still in place.
type slotHandler struct {
	schema   slotfill.Schema
	engine   *slotfill.Engine
	complete completion
	l        pkgLog.Logger
}

func (h *slotHandler) Multiturn() bool { return true }

func (h *slotHandler) Handle(ctx context.Context, sess *model.Session, userText string) (string, error) {
	window := memory.Window(sess, memory.MaxHistory)

	res, err := h.engine.Advance(ctx, h.schema, sess.CategorySlots(h.schema.Category), userText, window)
	if res.Slots != nil {
		sess.Slots[h.schema.Category] = res.Slots
	}
	if err != nil {
		return "", err
	}

	if !res.Complete {
		if res.Question != "" {
			return res.Question, nil
		}
		return localized(sess.Language, AskDetailsES, AskDetailsEN), nil
	}

	return h.complete(ctx, sess, res.Slots)
}
