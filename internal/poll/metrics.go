package poll

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts poll cycles per view.
type Metrics struct {
	cycles   *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers poll metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cronjobctl",
			Subsystem: "poll",
			Name:      "cycles_total",
			Help:      "Completed poll cycles per view.",
		}, []string{"view"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cronjobctl",
			Subsystem: "poll",
			Name:      "skipped_total",
			Help:      "Ticks skipped because the previous fetch was still in flight.",
		}, []string{"view"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cronjobctl",
			Subsystem: "poll",
			Name:      "errors_total",
			Help:      "Failed poll cycles per view.",
		}, []string{"view"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cronjobctl",
			Subsystem: "poll",
			Name:      "duration_seconds",
			Help:      "Fetch duration per view.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
	}
	reg.MustRegister(m.cycles, m.skipped, m.errors, m.duration)
	return m
}
