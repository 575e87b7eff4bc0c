// Package metrics defines the Prometheus collectors for engine runs.
//
// Collectors are registered with the default registry on package load and
// exposed by promhttp.Handler.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// runsTotal counts engine invocations.
	// Labels: algorithm ("kruskal", "prim", "dijkstra"), outcome (see Outcome*).
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvtrace_runs_total",
		Help: "Total engine runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvtrace_run_duration_seconds",
		Help:    "Engine run duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"algorithm"})

	traceSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvtrace_trace_steps",
		Help:    "Number of steps per successful trace",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 1000},
	}, []string{"algorithm"})
)

// ObserveRun records one engine invocation. steps is ignored unless outcome
// is OutcomeOK.
func ObserveRun(algorithm, outcome string, elapsed time.Duration, steps int) {
	runsTotal.WithLabelValues(algorithm, outcome).Inc()
	runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		traceSteps.WithLabelValues(algorithm).Observe(float64(steps))
	}
}
