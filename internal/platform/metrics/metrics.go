package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the API client layer.
type Metrics struct {
	RequestsTotal          *prometheus.CounterVec   // Requests by method and status class
	RequestDurationSeconds *prometheus.HistogramVec // Request latency by method
	NetworkFailuresTotal   prometheus.Counter       // Requests that never produced an HTTP status
	SessionExpiriesTotal   prometheus.Counter       // 401/403 responses observed
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roamtable_client_requests_total",
			Help: "Total number of API requests by method and status class",
		}, []string{"method", "class"}),

		RequestDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roamtable_client_request_duration_seconds",
			Help:    "Duration of API requests by method",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),

		NetworkFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roamtable_client_network_failures_total",
			Help: "Total number of requests that failed before receiving an HTTP status",
		}),

		SessionExpiriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roamtable_client_session_expiries_total",
			Help: "Total number of responses classified as session expiry (401/403)",
		}),
	}
}

// RecordRequest records one completed request. Status 0 means the request
// never reached the backend.
func (m *Metrics) RecordRequest(method string, status int, durationSeconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, statusClass(status)).Inc()
	m.RequestDurationSeconds.WithLabelValues(method).Observe(durationSeconds)
	if status == 0 {
		m.NetworkFailuresTotal.Inc()
	}
}

// RecordSessionExpiry records one 401/403 classification.
func (m *Metrics) RecordSessionExpiry() {
	if m == nil {
		return
	}
	m.SessionExpiriesTotal.Inc()
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "network_error"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
