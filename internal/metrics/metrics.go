package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranker_calculations_total",
			Help: "Total number of SAW calculations by outcome",
		},
		[]string{"outcome"},
	)

	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranker_calculation_errors_total",
			Help: "Rejected calculations by error kind",
		},
		[]string{"kind"},
	)

	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranker_calculation_duration_seconds",
			Help:    "Time spent validating and scoring one calculation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)

	AlternativesPerCalculation = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranker_alternatives_per_calculation",
			Help:    "Number of alternatives ranked per successful calculation",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// RecordSuccess counts a completed calculation.
func RecordSuccess(alternatives int, elapsed time.Duration) {
	CalculationsTotal.WithLabelValues("ok").Inc()
	CalculationDuration.Observe(elapsed.Seconds())
	AlternativesPerCalculation.Observe(float64(alternatives))
}

// RecordRejection counts a calculation refused by validation.
func RecordRejection(kind string, elapsed time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	CalculationsTotal.WithLabelValues("rejected").Inc()
	CalculationErrors.WithLabelValues(kind).Inc()
	CalculationDuration.Observe(elapsed.Seconds())
}
