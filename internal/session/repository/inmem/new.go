package inmem

import (
	"sync"

	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/session/repository"
	pkgLog "hospitality-concierge/pkg/log"
)

// implRepository is a map-backed session store used by tests and as the
// no-database dev mode.
type implRepository struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	l        pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory session repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		sessions: make(map[string]*model.Session),
		l:        l,
	}
}
