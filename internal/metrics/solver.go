// Package metrics exposes prometheus collectors for the solver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcomes used as the "mode" label.
const (
	ModeEnumerated = "enumerated"
	ModeCountOnly  = "count_only"
	ModeRejected   = "rejected"
)

var (
	SolveRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hanoi_solve_requests_total",
		Help: "Total number of solve requests by outcome",
	}, []string{"mode"}) // mode=enumerated|count_only|rejected

	SolveDisks = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hanoi_solve_disks",
		Help:    "Disk counts of accepted solve requests",
		Buckets: []float64{1, 3, 5, 10, 20, 64, 100, 1000, 10000},
	})

	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hanoi_solve_duration_seconds",
		Help:    "Time spent computing a solution",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"mode"})

	MovesEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hanoi_moves_emitted_total",
		Help: "Total number of moves materialized across all enumerated solutions",
	})
)

// RecordSolve records one accepted solve.
func RecordSolve(disks int, enumerated bool, moves int, seconds float64) {
	mode := ModeCountOnly
	if enumerated {
		mode = ModeEnumerated
		MovesEmittedTotal.Add(float64(moves))
	}

	SolveRequestsTotal.WithLabelValues(mode).Inc()
	SolveDisks.Observe(float64(disks))
	SolveDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordRejected records a solve refused before computation.
func RecordRejected() {
	SolveRequestsTotal.WithLabelValues(ModeRejected).Inc()
}
