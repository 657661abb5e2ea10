package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cuotas_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
		[]string{"frequency"},
	)

	SubscriptionsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cuotas_subscriptions_deleted_total",
			Help: "Total number of subscriptions deleted",
		},
	)

	MemberChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_member_changes_total",
			Help: "Total number of member changes",
		},
		[]string{"action"},
	)

	ReordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_reorders_total",
			Help: "Total number of collection reorders and restores",
		},
		[]string{"status"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_store_errors_total",
			Help: "Total number of failed store operations",
		},
		[]string{"operation"},
	)

	SessionSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cuotas_session_subscriptions",
			Help: "Subscriptions held by the session cache after the last refresh",
		},
	)

	ThemeChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cuotas_theme_changes_total",
			Help: "Total number of theme changes",
		},
		[]string{"theme"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSubscriptionCreated(frequency string) {
	SubscriptionsCreatedTotal.WithLabelValues(frequency).Inc()
}

func RecordSubscriptionDeleted() {
	SubscriptionsDeletedTotal.Inc()
}

func RecordMemberChange(action string) {
	MemberChangesTotal.WithLabelValues(action).Inc()
}

func RecordReorder(status string) {
	ReordersTotal.WithLabelValues(status).Inc()
}

func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}

func SetSessionSize(n int) {
	SessionSubscriptions.Set(float64(n))
}

func RecordThemeChange(theme string) {
	ThemeChangesTotal.WithLabelValues(theme).Inc()
}
