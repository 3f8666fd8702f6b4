package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "ok", status: http.StatusOK, expectedLevel: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, expectedLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, nil))

			r := chi.NewRouter()
			r.Use(LoggingMiddleware(logger))
			r.Put("/api/users/{id}/profile", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodPut, "/api/users/42/profile", strings.NewReader(`{"password":"secret"}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, tt.expectedLevel)
			assert.Contains(t, logOutput, "path=/api/users/42/profile")
			assert.Contains(t, logOutput, "route=/api/users/{id}/profile")
			assert.Contains(t, logOutput, "bytes_written=4")
			assert.NotContains(t, logOutput, "secret", "тело запроса не логируется")
		})
	}
}

func TestLoggingWithSkip(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	handler := LoggingWithSkip(logger, []string{"/metrics"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Empty(t, logBuf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	assert.Contains(t, logBuf.String(), "path=/api/courses")
}
