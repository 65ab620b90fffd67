package domain

import "errors"

// Error kinds reported by gateway operations. Callers test for them with
// errors.Is; the API layer maps each one to a response status.
var (
	// ErrNotFound is returned when a referenced user, link or category does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a backend rejects a write as a duplicate.
	ErrConflict = errors.New("conflict")

	// ErrUpstreamUnavailable is returned when a backend could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrValidation is returned when input fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when a backend refuses the gateway's or the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadRequest is returned for any other backend rejection.
	ErrBadRequest = errors.New("bad request")
)
