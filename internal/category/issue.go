package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	pkgLog "hospitality-concierge/pkg/log"
)

// Issue collects a stay problem and its description, then registers a
// ticket and confirms its reference to the guest.
type Issue struct {
	slotHandler
	newRef func() string
}

// NewIssue creates the stay-issue handler.
func NewIssue(engine *slotfill.Engine, l pkgLog.Logger) *Issue {
	h := &Issue{
		newRef: func() string { return uuid.NewString()[:8] },
	}
	h.slotHandler = slotHandler{
		schema: slotfill.Schema{
			Category:     model.CategoryIssue,
			Fields:       []string{FieldProblem, FieldDescription},
			Instructions: InstructionsIssue,
		},
		engine:   engine,
		complete: h.registerTicket,
		l:        l,
	}
	return h
}

func (h *Issue) registerTicket(_ context.Context, sess *model.Session, slots map[string]string) (string, error) {
	ref := h.newRef()
	return fmt.Sprintf(
		localized(sess.Language, IssueConfirmationES, IssueConfirmationEN),
		slots[FieldProblem], ref,
	), nil
}
