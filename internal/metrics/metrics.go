// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts handled requests by route template and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthfit_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// APIRequestDuration observes request latency by route template.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthfit_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthEventsTotal counts signups, logins and their outcomes.
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthfit_auth_events_total",
			Help: "Authentication events by kind and outcome",
		},
		[]string{"event", "outcome"},
	)

	// RecordsCreatedTotal counts logged records by kind.
	RecordsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthfit_records_created_total",
			Help: "Logged health records by kind",
		},
		[]string{"kind"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, route string, status int, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAuthEvent records an authentication attempt.
func RecordAuthEvent(event string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	AuthEventsTotal.WithLabelValues(event, outcome).Inc()
}

// RecordCreated records a newly logged record of the given kind.
func RecordCreated(kind string) {
	RecordsCreatedTotal.WithLabelValues(kind).Inc()
}
