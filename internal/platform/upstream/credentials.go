package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Credentials injects backend credentials into an outbound request.
type Credentials interface {
	Apply(req *http.Request) error
}

// NoCredentials sends requests without an Authorization header.
type NoCredentials struct{}

// Apply implements Credentials.
func (NoCredentials) Apply(*http.Request) error { return nil }

// BearerToken sends a static token as "Authorization: Bearer <token>".
type BearerToken string

// Apply implements Credentials.
func (t BearerToken) Apply(req *http.Request) error {
	if t == "" {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+string(t))
	return nil
}

// ErrServiceSecretTooShort is returned by NewServiceToken for secrets under 32 bytes.
var ErrServiceSecretTooShort = errors.New("service token secret must be at least 32 characters")

const defaultServiceTokenTTL = time.Minute

// ServiceToken signs a short-lived HS256 JWT for every request, identifying
// the gateway to a backend that shares the secret.
type ServiceToken struct {
	signingKey []byte
	issuer     string
	audience   string
	ttl        time.Duration
	timeFunc   func() time.Time
}

// NewServiceToken creates a ServiceToken. A zero ttl defaults to one minute.
func NewServiceToken(secret, issuer, audience string, ttl time.Duration) (*ServiceToken, error) {
	if len(secret) < 32 {
		return nil, ErrServiceSecretTooShort
	}
	if ttl <= 0 {
		ttl = defaultServiceTokenTTL
	}

	return &ServiceToken{
		signingKey: []byte(secret),
		issuer:     issuer,
		audience:   audience,
		ttl:        ttl,
		timeFunc:   time.Now,
	}, nil
}

// Apply implements Credentials.
func (s *ServiceToken) Apply(req *http.Request) error {
	now := s.timeFunc()

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return fmt.Errorf("failed to sign service token with HMAC-SHA256: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+signed)
	return nil
}
