package server

import (
	"strconv"
	"time"

	"cuotas/internal/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels static files and 404s so asset names do not
// become metric labels.
const unmatchedRoute = "unmatched"

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
