// Package metrics exposes Prometheus instrumentation for library loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes recorded on the loads_total counter
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeParseError = "parse_error"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datalib_loads_total",
		Help: "Total number of library load requests by outcome.",
	}, []string{"outcome"})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "datalib_load_duration_seconds",
		Help:    "Duration of library load requests.",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordLoad records a completed load request with its outcome and duration
func RecordLoad(outcome string, duration time.Duration) {
	loadsTotal.WithLabelValues(outcome).Inc()
	loadDuration.Observe(duration.Seconds())
}
