package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/porcentagem/api-gateway/internal/api/shared"
)

// decodeAndValidate reads the request body into req and validates it,
// writing a 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}

// pathParam extracts a path parameter and validates it against tag,
// writing a 400 response and returning false on failure.
func pathParam(w http.ResponseWriter, r *http.Request, name, tag string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := shared.ValidateVar(value, tag); err != nil {
		message := "Invalid " + name + ": " + getValidationTagMessage(tagOf(err))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return "", false
	}
	return value, true
}

// handleServiceError writes the response for a failed service call.
// Credential rejections by a backend are logged at WARN.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
