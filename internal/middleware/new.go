package middleware

import (
	"hospitality-concierge/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares of the chat API.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many messages a
// single source may send per minute.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
