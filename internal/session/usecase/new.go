package usecase

import (
	"time"

	"hospitality-concierge/internal/classifier"
	"hospitality-concierge/internal/dispatcher"
	"hospitality-concierge/internal/session"
	"hospitality-concierge/internal/session/repository"
	pkgLog "hospitality-concierge/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	classifier classifier.Classifier
	dispatcher *dispatcher.Dispatcher
	now        func() time.Time
}

var _ session.UseCase = (*implUseCase)(nil)

// New creates a new session UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	cls classifier.Classifier,
	disp *dispatcher.Dispatcher,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		classifier: cls,
		dispatcher: disp,
		now:        time.Now,
	}
}
