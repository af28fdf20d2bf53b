package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the token refresh path fails; the
// caller must re-authenticate. The stored session is cleared before this
// is returned.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx response from the backend. Transport-level
// failures are wrapped network errors instead, so callers can always
// tell "server said no" apart from "server unreachable".
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// retryable reports whether the status code warrants a backoff retry.
func retryable(status int) bool {
	return status == 429 || status/100 == 5
}
