package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	t.Run("reports ok without a token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.On("CheckConnectivity").Return(nil)

		rec := httptest.NewRecorder()
		ts.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var body StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "ok", body.Database)
	})

	t.Run("reports database failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.health.On("CheckConnectivity").Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		ts.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database connectivity check failed")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "account_risk_confirmed_total")
}
