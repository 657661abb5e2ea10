package server

import (
	"net/http"
	"time"

	"cuotas/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware logs one line per request. Query strings are
// left out; probes to /health and /metrics log at debug level.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("HTTP request", args...)
		case path == "/health" || path == "/metrics":
			logger.Debug("HTTP request", args...)
		default:
			logger.Info("HTTP request", args...)
		}
	}
}
