// Package observability exposes the Prometheus metrics shared by the API,
// worker and registry cache.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registryRefreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "registry",
		Name:      "refreshes_total",
		Help:      "Registry cache refresh attempts by result.",
	}, []string{"result"})

	registryEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "liftlog",
		Subsystem: "registry",
		Name:      "active_entries",
		Help:      "Active exercise entries in the cached registry index.",
	})

	classifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "strength",
		Name:      "classifications_total",
		Help:      "Strength classifications computed, by resulting tier.",
	}, []string{"level"})

	calorieEstimates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "calories",
		Name:      "estimates_total",
		Help:      "Calorie estimations computed, by branch.",
	}, []string{"branch"})

	recalcRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "liftlog",
		Subsystem: "recalc",
		Name:      "records_total",
		Help:      "Personal records touched by profile-change fan-out, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(registryRefreshes, registryEntries, classifications, calorieEstimates, recalcRecords)
}

// RecordRegistryRefresh tracks one cache refresh attempt.
func RecordRegistryRefresh(err error, activeEntries int) {
	if err != nil {
		registryRefreshes.WithLabelValues("error").Inc()
		return
	}
	registryRefreshes.WithLabelValues("ok").Inc()
	registryEntries.Set(float64(activeEntries))
}

// RecordClassification tracks one computed strength tier.
func RecordClassification(level string) {
	classifications.WithLabelValues(level).Inc()
}

// RecordCalorieEstimate tracks one calorie estimation by branch
// (cardio, resistance, short_circuit, none).
func RecordCalorieEstimate(branch string) {
	calorieEstimates.WithLabelValues(branch).Inc()
}

// RecordRecalcOutcome tracks a single record outcome during fan-out
// (updated, unchanged, skipped, failed).
func RecordRecalcOutcome(outcome string) {
	recalcRecords.WithLabelValues(outcome).Inc()
}
