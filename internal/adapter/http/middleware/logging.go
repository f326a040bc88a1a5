package middleware

import (
	"sparkle_shine/internal/infrastructure/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware writes one structured access log line per request.
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := []any{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"query", raw,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP_REQUEST_ERROR", fields...)
		case status >= 400:
			log.Warnw("HTTP_REQUEST_WARNING", fields...)
		default:
			log.Infow("HTTP_REQUEST_INFO", fields...)
		}
	}
}

// RecoveryMiddleware logs a recovered panic and answers 500.
func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("[http][middleware] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(internalError.HTTPStatus, internalError.ToHTTPError())
	})
}
