// Package identity adapts the authentication backend. The gateway only
// forwards the caller's credentials; token semantics live in the backend.
package identity

import (
	"context"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
)

// Client calls the identity backend.
type Client struct {
	http *upstream.Client
}

// New wraps an upstream client for the identity backend.
func New(http *upstream.Client) *Client {
	return &Client{http: http}
}

// ValidateToken asks the backend whether the caller's Authorization header is valid.
func (c *Client) ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error) {
	var validation domain.TokenValidation
	err := c.http.Get(ctx, "/auth/validate", &validation, upstream.WithAuthorization(authorization))
	return validation, err
}
