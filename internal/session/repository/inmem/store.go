package inmem

import (
	"context"

	"hospitality-concierge/internal/model"
)

// Load returns the stored session for id, creating and persisting a fresh
// one when none exists.
func (r *implRepository) Load(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[id]; ok {
		return clone(sess), nil
	}

	sess := model.NewSession(id)
	r.sessions[id] = clone(sess)
	return sess, nil
}

// Save upserts the session. The stored copy is detached from the caller's.
func (r *implRepository) Save(_ context.Context, sess *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sess.ID] = clone(sess)
	return nil
}

func clone(sess *model.Session) *model.Session {
	out := *sess

	out.History = make([]model.Turn, len(sess.History))
	copy(out.History, sess.History)

	out.Slots = make(map[model.Category]map[string]string, len(sess.Slots))
	for cat, slots := range sess.Slots {
		cp := make(map[string]string, len(slots))
		for k, v := range slots {
			cp[k] = v
		}
		out.Slots[cat] = cp
	}

	if sess.CheckoutDate != nil {
		d := *sess.CheckoutDate
		out.CheckoutDate = &d
	}

	return &out
}
