package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/porcentagem/api-gateway/internal/api/shared"
	"github.com/stretchr/testify/require"
)

// registrar is implemented by every handler in this package.
type registrar interface {
	Register(r chi.Router)
}

// serve routes a single request through a fresh router carrying h's routes.
func serve(h registrar, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	h.Register(router)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	return decodeBody[shared.ErrorResponse](t, rr)
}

