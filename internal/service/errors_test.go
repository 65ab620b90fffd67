package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstreamError(status int) error {
	return &upstream.Error{
		Backend:    "belvo",
		Method:     http.MethodPost,
		Path:       "/accounts/link",
		StatusCode: status,
		Body:       `{"message":"rejected"}`,
	}
}

func transportError() error {
	return &upstream.Error{
		Backend: "belvo",
		Method:  http.MethodGet,
		Path:    "/accounts/belvo/l-1",
		Err:     errors.New("connection refused"),
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "conflict", err: upstreamError(http.StatusConflict), want: domain.ErrConflict},
		{name: "unauthorized", err: upstreamError(http.StatusUnauthorized), want: domain.ErrUnauthorized},
		{name: "forbidden", err: upstreamError(http.StatusForbidden), want: domain.ErrUnauthorized},
		{name: "not found", err: upstreamError(http.StatusNotFound), want: domain.ErrBadRequest},
		{name: "server error", err: upstreamError(http.StatusInternalServerError), want: domain.ErrBadRequest},
		{name: "transport", err: transportError(), want: domain.ErrUpstreamUnavailable},
		{name: "wrapped transport", err: fmt.Errorf("ctx: %w", transportError()), want: domain.ErrUpstreamUnavailable},
		{name: "plain error", err: errors.New("boom"), want: domain.ErrBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestClassifyLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.ErrNotFound, classifyLookup(upstreamError(http.StatusNotFound)))
	assert.Equal(t, domain.ErrConflict, classifyLookup(upstreamError(http.StatusConflict)))
}

func TestOperationErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := upstreamError(http.StatusConflict)
	err := fail("LinkAccount", "failed to link account", cause)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrBadRequest)

	var upErr *upstream.Error
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, `{"message":"rejected"}`, upErr.Body)

	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "failed to link account", opErr.Message)
	assert.Contains(t, err.Error(), "LinkAccount failed: failed to link account")

	bare := NewOperationError("UpdateBankAccounts", domain.ErrValidation, "no accounts to update", nil)
	assert.ErrorIs(t, bare, domain.ErrValidation)
	assert.Equal(t, "UpdateBankAccounts failed: no accounts to update", bare.Error())
}
