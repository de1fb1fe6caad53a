// Package metrics provides Prometheus metrics for the catalog feed service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesTotal tracks processed batches by status
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "pipeline",
			Name:      "batches_total",
			Help:      "Total number of batches processed by status",
		},
		[]string{"status"},
	)

	// BatchDuration tracks batch processing duration in seconds
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "pipeline",
			Name:      "batch_duration_seconds",
			Help:      "Duration of batch processing in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// RowsProcessedTotal tracks source rows consumed
	RowsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "pipeline",
			Name:      "rows_processed_total",
			Help:      "Total number of source rows consumed",
		},
	)

	// RowsAdmittedTotal tracks rows emitted into the output set
	RowsAdmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "pipeline",
			Name:      "rows_admitted_total",
			Help:      "Total number of rows admitted to the output set",
		},
	)

	// RowsRejectedTotal tracks excluded rows by reason
	RowsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "pipeline",
			Name:      "rows_rejected_total",
			Help:      "Total number of rows excluded from the output set by reason",
		},
		[]string{"reason"},
	)

	// KafkaMessagesPublished tracks Kafka messages published
	KafkaMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Total number of messages published to Kafka",
		},
		[]string{"topic", "status"},
	)
)

// RecordBatch records one batch outcome
func RecordBatch(status string, durationSeconds float64) {
	BatchesTotal.WithLabelValues(status).Inc()
	BatchDuration.Observe(durationSeconds)
}

// RecordRejection records one excluded row
func RecordRejection(reason string) {
	RowsRejectedTotal.WithLabelValues(reason).Inc()
}
