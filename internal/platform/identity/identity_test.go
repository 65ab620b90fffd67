package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/porcentagem/api-gateway/internal/platform/identity"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenForwardsAuthorization(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"userId":"u-1","isValid":true,"expiresIn":3600}`))
	}))
	defer srv.Close()

	client, err := upstream.New(upstream.Config{Name: "identity", BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	c := identity.New(client)

	validation, err := c.ValidateToken(context.Background(), "Bearer good")
	require.NoError(t, err)
	assert.True(t, validation.IsValid)
	assert.Equal(t, "u-1", validation.UserID)
	assert.Equal(t, 3600, validation.ExpiresIn)

	_, err = c.ValidateToken(context.Background(), "Bearer bad")
	require.Error(t, err)
	assert.True(t, upstream.IsStatus(err, http.StatusUnauthorized))
}
