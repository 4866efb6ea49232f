package http

import (
	"github.com/gin-gonic/gin"

	"hospitality-concierge/internal/session"
	"hospitality-concierge/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc session.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
