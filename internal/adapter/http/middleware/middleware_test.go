package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sparkle_shine/internal/infrastructure/config"
	"sparkle_shine/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := observedLogger()

	r := gin.New()
	r.Use(LoggingMiddleware(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?page=1", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "HTTP_REQUEST_INFO", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, "page=1", entries[0].ContextMap()["query"])

	assert.Equal(t, "HTTP_REQUEST_WARNING", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, "HTTP_REQUEST_ERROR", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := observedLogger()

	r := gin.New()
	r.Use(RecoveryMiddleware(log))
	r.GET("/panic", func(*gin.Context) { panic("mop bucket overflow") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Equal(t, 1, logs.FilterMessage("[http][middleware] recovered from panic").Len())
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(rl *RateLimiter) *gin.Engine {
		r := gin.New()
		r.Use(rl.Middleware())
		r.POST("/v1/chat/conversations/:conversation_id/messages", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	call := func(r *gin.Engine, method, path, ip string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("limits per client and route", func(t *testing.T) {
		r := newRouter(NewRateLimiter(2, time.Minute))

		assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/v1/chat/conversations/a/messages", "10.0.0.1"))
		// A different conversation shares the route bucket.
		assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/v1/chat/conversations/b/messages", "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, call(r, http.MethodPost, "/v1/chat/conversations/a/messages", "10.0.0.1"))

		assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/v1/chat/conversations/a/messages", "10.0.0.2"))
		assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/v1/ping", "10.0.0.1"))
	})

	t.Run("disabled", func(t *testing.T) {
		r := newRouter(NewRateLimiter(0, time.Minute))
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/v1/ping", "10.0.0.1"))
		}
	})
}

func TestSentryMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SentryMiddleware(config.SentryConfig{}))
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
