package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "archive_writer",
		Name:      "flush_total",
		Help:      "Count of archive batch flushes.",
	}, []string{"status"})

	archiveFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arogya",
		Subsystem: "archive_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of archive batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	archiveFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arogya",
		Subsystem: "archive_writer",
		Name:      "flush_size",
		Help:      "Number of transactions per archive flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})

	archiveEnqueueTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "archive_writer",
		Name:      "enqueue_total",
		Help:      "Count of transactions offered to the archive queue.",
	}, []string{"result"})
)

// ArchiveWriter tracks metrics for the transaction archive.
type ArchiveWriter struct{}

// NewArchiveWriter creates an ArchiveWriter metrics collector.
func NewArchiveWriter() *ArchiveWriter {
	return &ArchiveWriter{}
}

// ObserveFlush records a batch write to the archive.
func (m ArchiveWriter) ObserveFlush(rows int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	archiveFlushTotal.WithLabelValues(status).Inc()
	archiveFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	archiveFlushSize.Observe(float64(rows))
}

// ObserveEnqueue counts a transaction offered to the archive queue.
func (m ArchiveWriter) ObserveEnqueue(accepted bool) {
	result := "enqueued"
	if !accepted {
		result = "dropped"
	}
	archiveEnqueueTotal.WithLabelValues(result).Inc()
}
