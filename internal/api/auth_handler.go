package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/porcentagem/api-gateway/internal/api/shared"
	"github.com/porcentagem/api-gateway/internal/service"
)

// AuthHandler handles the /auth routes. Token checks are delegated to the
// identity backend.
type AuthHandler struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokenService service.TokenService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		tokenService: tokenService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Register mounts the /auth routes on r.
func (h *AuthHandler) Register(r chi.Router) {
	r.Get("/auth/validate", h.ValidateToken)
}

// ValidateToken handles GET /auth/validate by forwarding the caller's
// Authorization header to the identity backend.
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	validation, err := h.tokenService.ValidateToken(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, validation)
}
