package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hospitality-concierge/internal/model"
	pkgLog "hospitality-concierge/pkg/log"
)

// cachedRepository is a read-through cache over another Repository. Chat
// traffic is bursty per guest, so the hot session stays in memory between
// consecutive turns instead of being re-read from the store.
type cachedRepository struct {
	inner Repository
	cache *expirable.LRU[string, *model.Session]
	l     pkgLog.Logger
}

var _ Repository = (*cachedRepository)(nil)

// NewCached wraps inner with an expiring LRU of the given size and TTL.
func NewCached(inner Repository, size int, ttl time.Duration, l pkgLog.Logger) *cachedRepository {
	return &cachedRepository{
		inner: inner,
		cache: expirable.NewLRU[string, *model.Session](size, nil, ttl),
		l:     l,
	}
}

func (r *cachedRepository) Load(ctx context.Context, id string) (*model.Session, error) {
	if sess, ok := r.cache.Get(id); ok {
		return sess, nil
	}

	sess, err := r.inner.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Add(id, sess)
	return sess, nil
}

// Save writes through to the store. The cache entry is refreshed first so a
// failed store write still leaves the latest state servable for the next
// turn, matching the at-most-once durability contract.
func (r *cachedRepository) Save(ctx context.Context, sess *model.Session) error {
	r.cache.Add(sess.ID, sess)
	return r.inner.Save(ctx, sess)
}
