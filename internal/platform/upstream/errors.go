package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for every failed outbound call.
type Error struct {
	Backend    string
	Method     string
	Path       string
	StatusCode int    // 0 when no response was received
	Body       string // response body exactly as the backend sent it
	Err        error  // transport or decode failure, if any
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s %s %s: request failed: %v", e.Backend, e.Method, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s %s: status %d: %v", e.Backend, e.Method, e.Path, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s %s %s: status %d", e.Backend, e.Method, e.Path, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transport reports whether the call failed before a response was received.
func (e *Error) Transport() bool {
	return e.StatusCode == 0
}

// StatusCode returns the backend status carried by err, or 0 when err holds
// no *Error or the call never received a response.
func StatusCode(err error) int {
	var upErr *Error
	if errors.As(err, &upErr) {
		return upErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err carries the given backend status.
func IsStatus(err error, status int) bool {
	code := StatusCode(err)
	return code != 0 && code == status
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsTransport reports whether err is an outbound call that received no response.
func IsTransport(err error) bool {
	var upErr *Error
	return errors.As(err, &upErr) && upErr.Transport()
}
