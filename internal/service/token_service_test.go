package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	t.Parallel()

	identity := &MockTokenValidator{}
	identity.On("ValidateToken", mock.Anything, "Bearer good").
		Return(domain.TokenValidation{UserID: testUserID, IsValid: true, ExpiresIn: 900}, nil)
	identity.On("ValidateToken", mock.Anything, "Bearer bad").
		Return(domain.TokenValidation{}, upstreamError(http.StatusUnauthorized))
	identity.On("ValidateToken", mock.Anything, "Bearer down").
		Return(domain.TokenValidation{}, transportError())

	svc, err := NewTokenService(identity, nil)
	require.NoError(t, err)
	ctx := context.Background()

	validation, err := svc.ValidateToken(ctx, "Bearer good")
	require.NoError(t, err)
	assert.True(t, validation.IsValid)
	assert.Equal(t, testUserID, validation.UserID)

	_, err = svc.ValidateToken(ctx, "Bearer bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateToken(ctx, "Bearer down")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	identity.AssertNumberOfCalls(t, "ValidateToken", 3)
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
