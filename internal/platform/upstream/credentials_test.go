package upstream

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestNewServiceToken(t *testing.T) {
	t.Parallel()

	_, err := NewServiceToken("short", "api-gateway", "belvo", time.Minute)
	assert.ErrorIs(t, err, ErrServiceSecretTooShort)

	st, err := NewServiceToken(testSecret, "api-gateway", "belvo", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultServiceTokenTTL, st.ttl)
}

func TestServiceTokenApply(t *testing.T) {
	t.Parallel()

	fixedTime := time.Now().Truncate(time.Second)
	st, err := NewServiceToken(testSecret, "api-gateway", "belvo", 2*time.Minute)
	require.NoError(t, err)
	st.timeFunc = func() time.Time { return fixedTime }

	first, err := http.NewRequest(http.MethodGet, "http://belvo.internal/widget/token", nil)
	require.NoError(t, err)
	second, err := http.NewRequest(http.MethodGet, "http://belvo.internal/widget/token", nil)
	require.NoError(t, err)

	require.NoError(t, st.Apply(first))
	require.NoError(t, st.Apply(second))

	header := first.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Bearer "))

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience("belvo"),
		jwt.WithIssuer("api-gateway"),
	)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, fixedTime.Add(2*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	// every request gets a fresh token id
	assert.NotEqual(t, header, second.Header.Get("Authorization"))
}

func TestBearerTokenApply(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodGet, "http://belvo.internal", nil)
	require.NoError(t, err)

	require.NoError(t, BearerToken("").Apply(req))
	assert.Empty(t, req.Header.Get("Authorization"))

	require.NoError(t, BearerToken("abc").Apply(req))
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))

	require.NoError(t, NoCredentials{}.Apply(req))
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
}
