package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/identity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	m.Run()
}

func TestJWTMiddleware(t *testing.T) {
	valid, err := identity.Issue([]byte(testSecret), "alice", time.Hour)
	require.NoError(t, err)
	expired, err := identity.Issue([]byte(testSecret), "alice", -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization missing"},
		{"wrong scheme", "Token token=\"abc\"", http.StatusUnauthorized, "Malformed authorization header"},
		{"empty bearer", "Bearer  ", http.StatusUnauthorized, "Malformed authorization header"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Invalid token"},
		{"valid", "Bearer " + valid, http.StatusOK, "alice 192.0.2.1"},
	}

	handler := NewJWTAuthenticator(testSecret).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(id.Subject + " " + id.ClientIP()))
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/risks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestJWTMiddlewareSetSecret(t *testing.T) {
	rotated := "fedcba9876543210fedcba9876543210"
	oldToken, err := identity.Issue([]byte(testSecret), "alice", time.Hour)
	require.NoError(t, err)
	newToken, err := identity.Issue([]byte(rotated), "alice", time.Hour)
	require.NoError(t, err)

	auth := NewJWTAuthenticator(testSecret)
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	status := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/risks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, status(oldToken))
	assert.Equal(t, http.StatusUnauthorized, status(newToken))

	auth.SetSecret(rotated)
	assert.Equal(t, http.StatusUnauthorized, status(oldToken))
	assert.Equal(t, http.StatusOK, status(newToken))
}

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", RemoteIP(req).String())

	req.RemoteAddr = "10.1.2.4"
	assert.Equal(t, "10.1.2.4", RemoteIP(req).String())
}
