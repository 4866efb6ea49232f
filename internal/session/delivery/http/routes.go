package http

import (
	"github.com/gin-gonic/gin"

	"hospitality-concierge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
