package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes by error
// kind. A backend that cannot be reached is reported as 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message that can be shown to clients.
// Service errors carry their own safe message; anything else gets a
// generic one based on its kind.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var opErr *service.OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, domain.ErrConflict):
		return "Resource already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, domain.ErrBadRequest):
		return "Request rejected by upstream service"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "Upstream service unavailable"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first failing field, without exposing struct names.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fieldPath(fe.Namespace()), getValidationTagMessage(fe.Tag()))
	}

	return "Validation error"
}

// fieldPath strips the root struct name from a validator namespace,
// e.g. "UpdateBankAccountsRequest.accounts[0].status" -> "accounts[0].status".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// tagOf returns the tag of the first validation failure in err.
func tagOf(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return validationErrs[0].Tag()
	}
	return ""
}
