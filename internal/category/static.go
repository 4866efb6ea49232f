package category

import (
	"context"

	"hospitality-concierge/internal/model"
)

// Static answers a category with a fixed localized reply. Used for the
// requests the concierge routes to a human process (stay extensions,
// partner discounts).
type Static struct {
	replyES string
	replyEN string
}

// NewExtendStay creates the stay-extension handler.
func NewExtendStay() *Static {
	return &Static{replyES: ExtendStayReplyES, replyEN: ExtendStayReplyEN}
}

// NewDiscounts creates the partner-discounts handler.
func NewDiscounts() *Static {
	return &Static{replyES: DiscountsReplyES, replyEN: DiscountsReplyEN}
}

func (h *Static) Multiturn() bool { return false }

func (h *Static) Handle(_ context.Context, sess *model.Session, _ string) (string, error) {
	return localized(sess.Language, h.replyES, h.replyEN), nil
}
