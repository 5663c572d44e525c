package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/api/dashboard/missing.json", nil)
	req.Header.Set("User-Agent", "dashboard-test")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	output := buf.String()
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/api/dashboard/missing.json"`)
	assert.Contains(t, output, `"status":404`)
	assert.Contains(t, output, `"duration_ms":`)
	assert.Contains(t, output, `"user_agent":"dashboard-test"`)
	assert.Contains(t, output, `"request_id":"`)
}

func TestRequestLoggingMiddlewareSetsRequestID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	handler := NewRequestLoggingMiddleware(logger)(okHandler())

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("GET", "/", nil))

	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, second.Header().Get("X-Request-ID"))
	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}

func TestRequestLoggingMiddlewarePropagatesContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var requestID string
	handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = w.Header().Get("X-Request-ID")
		logging.FromContext(r.Context()).Info("handler ran")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	// The handler's own log line carries the request ID
	assert.Contains(t, buf.String(), "handler ran")
	assert.Contains(t, buf.String(), requestID)
}

func TestRequestLoggingMiddlewareDefaultsToStatusOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := NewRequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}
