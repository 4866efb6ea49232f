package usecase

import (
	"context"
	"strings"

	"hospitality-concierge/internal/classifier"
	"hospitality-concierge/internal/memory"
	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/session"
)

// Chat processes one inbound guest message through the full cycle:
// load, lazy expiry, classify, dispatch, append, save.
//
// Collaborator failures never abort the turn. A failed load falls back to a
// fresh in-memory session, a failed save is logged and the reply is still
// returned. The only errors surfaced to the caller are input validation
// ones.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input session.ChatInput) (session.ChatOutput, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return session.ChatOutput{}, session.ErrEmptyUserID
	}
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return session.ChatOutput{}, session.ErrEmptyMessage
	}

	sess, err := uc.repo.Load(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: load failed, continuing with a fresh session: %v", LogPrefixChat, err)
		sess = model.NewSession(sc.UserID)
	}

	// expiry is applied lazily, only on load
	if !sess.Closed && sess.Expired(uc.now()) {
		sess.Closed = true
		uc.l.Infof(ctx, "%s: session %s expired, closing", LogPrefixChat, sess.ID)
	}
	if sess.Closed {
		uc.save(ctx, sess)
		return session.ChatOutput{
			Reply:    closedReply(sess.Language),
			Language: sess.Language,
		}, nil
	}

	window := memory.Window(sess, memory.MaxHistory)

	out := uc.classifier.Classify(ctx, msg, window, classifier.Hint{
		Language:       sess.Language,
		ActiveCategory: sess.ActiveCategory,
	})
	if out.Language != "" && out.Language != model.LanguageUnknown {
		sess.Language = out.Language
	}

	reply := uc.dispatcher.Route(ctx, sess, out.Intents, msg)

	memory.Append(sess, msg, reply)
	uc.save(ctx, sess)

	return session.ChatOutput{
		Reply:    reply,
		Language: sess.Language,
		Category: sess.ActiveCategory,
	}, nil
}

func (uc *implUseCase) save(ctx context.Context, sess *model.Session) {
	if err := uc.repo.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "%s: save failed, reply still returned: %v", LogPrefixChat, err)
	}
}
