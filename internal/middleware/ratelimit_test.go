package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("requests over the limit get 429", func(t *testing.T) {
		limiter := NewRateLimitMiddleware()
		handler := limiter.Limit(2, 60)(okHandler())

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("GET", "/api/vehicles", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		req := httptest.NewRequest("GET", "/api/vehicles", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("limits are tracked per IP", func(t *testing.T) {
		limiter := NewRateLimitMiddleware()
		handler := limiter.Limit(1, 60)(okHandler())

		first := httptest.NewRequest("GET", "/api/vehicles", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		other := httptest.NewRequest("GET", "/api/vehicles", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, other)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forwarded header wins over remote address", func(t *testing.T) {
		limiter := NewRateLimitMiddleware()
		handler := limiter.Limit(1, 60)(okHandler())

		for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest("GET", "/api/vehicles", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code, "request %d", i)
		}
	})

	t.Run("health and docs are never throttled", func(t *testing.T) {
		limiter := NewRateLimitMiddleware()
		handler := limiter.Limit(1, 60)(okHandler())

		for _, path := range []string{"/health", "/health", "/api/docs/openapi.yaml", "/api/docs/openapi.yaml"} {
			req := httptest.NewRequest("GET", path, nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})
}
