package server

import (
	"context"
	"net/http"

	"cuotas/internal/api"
	"cuotas/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter reports how many subscriptions are stored.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// @Summary      Health check
// @Description  Reports whether the store is reachable and how many subscriptions it holds
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(store Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Count(c.Request.Context())
		if err != nil {
			logger.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Subscriptions: n})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
