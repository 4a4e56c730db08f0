// Package observability exposes Prometheus metrics for computed workouts.
package observability

import (
	"github.com/and161185/fitness-tracker/model"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "training",
		Name:      "summaries_total",
		Help:      "Number of workout summaries computed, by discipline.",
	}, []string{"type"})
	failuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "training",
		Name:      "failures_total",
		Help:      "Number of rejected workout packets, by reason.",
	}, []string{"reason"})
	caloriesSpent = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitness_tracker",
		Subsystem: "training",
		Name:      "calories_kcal",
		Help:      "Distribution of spent calories per workout.",
		Buckets:   prometheus.LinearBuckets(0, 200, 10),
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(summariesTotal, failuresTotal, caloriesSpent)
}

// RecordSummary counts a computed summary and observes its calories.
func RecordSummary(info model.InfoMessage) {
	summariesTotal.WithLabelValues(info.TrainingType).Inc()
	caloriesSpent.WithLabelValues(info.TrainingType).Observe(info.Calories)
}

// RecordFailure counts a rejected packet.
func RecordFailure(reason string) {
	failuresTotal.WithLabelValues(reason).Inc()
}
