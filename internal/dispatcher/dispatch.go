package dispatcher

import (
	"context"
	"strings"

	"hospitality-concierge/internal/model"
)

// Route dispatches every classified intent in order and concatenates the
// responses. There is no priority or merge logic beyond positional order.
//
// An indeterminate (or empty) intent set short-circuits to the localized
// fallback without invoking any handler. Continuity of an open sub-dialogue
// is the classifier's job, via the active-category hint it receives. Unknown
// intents produce the localized fallback, not an error, and leave the active
// category untouched.
func (d *Dispatcher) Route(ctx context.Context, sess *model.Session, intents []model.Category, userText string) string {
	if indeterminate(intents) {
		return FallbackReply(sess.Language)
	}

	responses := make([]string, 0, len(intents))
	for _, intent := range intents {
		h, ok := d.handlers[intent]
		if !ok {
			d.l.Warnf(ctx, "%s: no handler for intent %q", LogPrefixRoute, intent)
			responses = append(responses, FallbackReply(sess.Language))
			continue
		}
		responses = append(responses, d.invoke(ctx, sess, intent, h, userText))
	}

	return strings.Join(responses, "\n")
}

func (d *Dispatcher) invoke(ctx context.Context, sess *model.Session, cat model.Category, h Handler, userText string) string {
	reply, err := h.Handle(ctx, sess, userText)
	if err != nil {
		d.l.Errorf(ctx, "%s: handler %s failed: %v", LogPrefixRoute, cat, err)
		return ErrorReply(sess.Language)
	}
	if h.Multiturn() {
		sess.ActiveCategory = cat
	}
	return reply
}

func indeterminate(intents []model.Category) bool {
	if len(intents) == 0 {
		return true
	}
	for _, intent := range intents {
		if intent != model.CategoryIndeterminate {
			return false
		}
	}
	return true
}
