package metrics

import (
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generatorTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "activity_generator",
		Name:      "ticks_total",
		Help:      "Count of generator ticks by outcome.",
	}, []string{"outcome"})

	generatorEmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "activity_generator",
		Name:      "emitted_total",
		Help:      "Count of synthetic transactions submitted to the ledger.",
	}, []string{"type", "status"})

	generatorTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arogya",
		Subsystem: "activity_generator",
		Name:      "tick_duration_seconds",
		Help:      "Duration of a generator tick.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// ActivityGenerator tracks metrics for the synthetic activity loop.
type ActivityGenerator struct{}

// NewActivityGenerator creates an ActivityGenerator metrics collector.
func NewActivityGenerator() *ActivityGenerator {
	return &ActivityGenerator{}
}

// ObserveTick records one generator tick. txType is empty for skipped ticks.
func (m ActivityGenerator) ObserveTick(emitted bool, txType model.TransactionType, err error, started time.Time) {
	outcome := "skipped"
	switch {
	case err != nil:
		outcome = "error"
	case emitted:
		outcome = "emitted"
	}

	generatorTicksTotal.WithLabelValues(outcome).Inc()
	generatorTickDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())

	if !emitted {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	generatorEmittedTotal.WithLabelValues(string(txType), status).Inc()
}
