package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/redact"
)

// TokenValidator asks the identity backend about a caller's credentials.
type TokenValidator interface {
	ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error)
}

// TokenService delegates token checks to the identity backend.
type TokenService interface {
	// ValidateToken forwards the caller's Authorization header unchanged.
	// Any backend failure is reported as unauthorized.
	ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error)
}

type tokenServiceImpl struct {
	identity TokenValidator
	logger   *slog.Logger
}

// NewTokenService creates a TokenService.
func NewTokenService(identity TokenValidator, logger *slog.Logger) (TokenService, error) {
	if identity == nil {
		return nil, fmt.Errorf("%w: identity cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &tokenServiceImpl{
		identity: identity,
		logger:   logger.With(slog.String("component", "token_service")),
	}, nil
}

// ValidateToken implements TokenService.ValidateToken.
func (s *tokenServiceImpl) ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error) {
	const op = "ValidateToken"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if authorization == "" {
		return domain.TokenValidation{}, NewOperationError(op, domain.ErrUnauthorized, "missing authorization header", nil)
	}

	validation, err := s.identity.ValidateToken(ctx, authorization)
	if err != nil {
		log.Debug("token validation failed", slog.String("error", redact.Error(err)))
		return domain.TokenValidation{}, NewOperationError(op, domain.ErrUnauthorized, "invalid token", err)
	}

	return validation, nil
}
