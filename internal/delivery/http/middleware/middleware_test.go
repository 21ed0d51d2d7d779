package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-recruitment-ops/internal/delivery/http/middleware"
	"go-recruitment-ops/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMemoryFallback(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(nil, middleware.DefaultRateLimitConfig(2, time.Minute)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "/ping", nil).Code)
	second := serve(r, "/ping", nil)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := serve(r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("RequestID"))
	})

	t.Run("Should echo a caller supplied id", func(t *testing.T) {
		w := serve(r, "/ping", http.Header{"X-Request-Id": {"abc-123"}})
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("Should replace an oversized id", func(t *testing.T) {
		long := strings.Repeat("x", 65)
		w := serve(r, "/ping", http.Header{"X-Request-Id": {long}})
		assert.NotEqual(t, long, w.Header().Get("X-Request-ID"))
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { c.Error(apperror.NotFound("candidate 0404", nil)) })
	r.GET("/boom", func(c *gin.Context) { c.Error(errors.New("db: connection reset")) })

	w := serve(r, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "candidate 0404")

	w = serve(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.GET("/v1/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, "/v1/clients", http.Header{"Authorization": {"Bearer x"}})
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}
