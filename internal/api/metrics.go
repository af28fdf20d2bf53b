package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records API request counts and latencies for the long-running
// watch mode.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cronjobctl",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by method, path and status code. Status 0 is a transport failure.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cronjobctl",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(method, path, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, path, status).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
