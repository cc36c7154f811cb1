// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "ledger",
		Name:      "records_total",
		Help:      "Count of ledger record attempts.",
	}, []string{"type", "tx_status", "status"})

	ledgerRecordDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arogya",
		Subsystem: "ledger",
		Name:      "record_duration_seconds",
		Help:      "Duration of recording a transaction, publishing included.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"type", "status"})
)

// Ledger tracks metrics for ledger mutations.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveRecord records the outcome of a single Record call.
func (m Ledger) ObserveRecord(txType model.TransactionType, txStatus model.TransactionStatus, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	typ := string(txType)
	if !txType.IsKnown() {
		typ = "unknown"
	}
	if txStatus == "" {
		txStatus = "none"
	}

	ledgerRecordsTotal.WithLabelValues(typ, string(txStatus), status).Inc()
	ledgerRecordDuration.WithLabelValues(typ, status).Observe(time.Since(started).Seconds())
}
