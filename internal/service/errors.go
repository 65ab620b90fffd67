package service

import (
	"fmt"
	"net/http"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
)

// OperationError is returned by every service operation that fails.
type OperationError struct {
	Operation string
	Kind      error  // one of the domain error sentinels
	Message   string // safe to show to API clients
	Err       error
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap exposes both the error kind and the underlying cause, so errors.Is
// matches the kind and errors.As still reaches an *upstream.Error.
func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewOperationError creates a new OperationError.
func NewOperationError(operation string, kind error, message string, err error) *OperationError {
	return &OperationError{
		Operation: operation,
		Kind:      kind,
		Message:   message,
		Err:       err,
	}
}

// classify maps a backend failure to an error kind: 409 is a conflict, 401
// and 403 are unauthorized, no response means the backend is unavailable and
// everything else, 404 included, is a bad request.
func classify(err error) error {
	if upstream.IsTransport(err) {
		return domain.ErrUpstreamUnavailable
	}
	switch upstream.StatusCode(err) {
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	default:
		return domain.ErrBadRequest
	}
}

// classifyLookup is classify for reads of a single resource, where a 404
// means the resource does not exist.
func classifyLookup(err error) error {
	if upstream.IsNotFound(err) {
		return domain.ErrNotFound
	}
	return classify(err)
}

// fail wraps a backend failure for operation using classify.
func fail(operation, message string, err error) *OperationError {
	return NewOperationError(operation, classify(err), message, err)
}
