package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	batchesPersistedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tasktracker",
		Subsystem: "persistence",
		Name:      "batches_persisted_total",
		Help:      "Number of task batches written to the store.",
	})
	tasksPersistedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tasktracker",
		Subsystem: "persistence",
		Name:      "tasks_persisted_total",
		Help:      "Number of individual tasks written across all batches.",
	})
	batchPersistFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tasktracker",
		Subsystem: "persistence",
		Name:      "batch_persist_failures_total",
		Help:      "Number of failed store writes.",
	})
	lastBatchPersistedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tasktracker",
		Subsystem: "persistence",
		Name:      "last_batch_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent batch written to the store.",
	})
)

func init() {
	prometheus.MustRegister(
		batchesPersistedTotal,
		tasksPersistedTotal,
		batchPersistFailuresTotal,
		lastBatchPersistedGauge,
	)
}

// RecordBatchPersisted advances the persistence counters and watermark.
func RecordBatchPersisted(taskCount int, ts time.Time) {
	batchesPersistedTotal.Inc()
	tasksPersistedTotal.Add(float64(taskCount))
	if !ts.IsZero() {
		lastBatchPersistedGauge.Set(float64(ts.Unix()))
	}
}

// RecordBatchPersistFailure counts a failed store write.
func RecordBatchPersistFailure() {
	batchPersistFailuresTotal.Inc()
}
