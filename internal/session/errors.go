package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrEmptyUserID  = errors.New("user identifier is empty")
)
