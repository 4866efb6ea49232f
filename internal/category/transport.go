package category

import (
	"context"
	"fmt"

	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	pkgLog "hospitality-concierge/pkg/log"
)

// Transport books a transfer once origin, destination, day and time are
// known, confirming all four values back to the guest.
type Transport struct {
	slotHandler
}

// NewTransport creates the transport-booking handler.
func NewTransport(engine *slotfill.Engine, l pkgLog.Logger) *Transport {
	h := &Transport{}
	h.slotHandler = slotHandler{
		schema: slotfill.Schema{
			Category:     model.CategoryTransport,
			Fields:       []string{FieldOrigin, FieldDestination, FieldDay, FieldTime},
			Instructions: InstructionsTransport,
		},
		engine:   engine,
		complete: h.confirm,
		l:        l,
	}
	return h
}

func (h *Transport) confirm(_ context.Context, sess *model.Session, slots map[string]string) (string, error) {
	return fmt.Sprintf(
		localized(sess.Language, TransportConfirmationES, TransportConfirmationEN),
		slots[FieldOrigin], slots[FieldDestination], slots[FieldDay], slots[FieldTime],
	), nil
}
