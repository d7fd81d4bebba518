package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnreachable means the request never reached the server.
	// It is the signal that triggers cache fallback or outbox queueing.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrUnauthorized maps a 401 response. Callers redirect to login.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx application response with a server-provided message.
// It is surfaced to the user as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
