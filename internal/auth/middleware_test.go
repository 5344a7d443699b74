package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkghttp "github.com/cybershield/backend/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r)
		require.NotNil(t, claims, "claims must be in context past the middleware")
		w.WriteHeader(http.StatusOK)
	})
}

func doAuthRequest(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	protected := Middleware(tm)(protectedHandler(t))

	rec := doAuthRequest(protected, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_MissingOrMalformedHeader(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	protected := Middleware(tm)(protectedHandler(t))

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"no header", "", "Access token required"},
		{"no scheme", "some-token", "Invalid authorization header format"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "Invalid authorization header format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAuthRequest(protected, tt.header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var body pkghttp.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	expired := NewTokenManager(testSecret, -time.Minute)
	token, err := expired.Generate(testUser())
	require.NoError(t, err)

	tm := NewTokenManager(testSecret, time.Hour)
	protected := Middleware(tm)(protectedHandler(t))

	rec := doAuthRequest(protected, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body pkghttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body.Message)
}

func TestMiddleware_TamperedToken(t *testing.T) {
	other := NewTokenManager("a-completely-different-secret-key", time.Hour)
	token, err := other.Generate(testUser())
	require.NoError(t, err)

	tm := NewTokenManager(testSecret, time.Hour)
	protected := Middleware(tm)(protectedHandler(t))

	rec := doAuthRequest(protected, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req))
}
