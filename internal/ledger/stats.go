package ledger

import "github.com/goodnatureofminers/arogya-ledger-backend/internal/model"

// Aggregator holds the dashboard stats. Only the transaction counter moves;
// every other field keeps its seed value.
type Aggregator struct {
	stats model.Stats
}

// NewAggregator seeds an Aggregator.
func NewAggregator(seed model.Stats) *Aggregator {
	return &Aggregator{stats: seed}
}

// IncrementTransactionCount adds one committed transaction to the total.
func (a *Aggregator) IncrementTransactionCount() {
	a.stats.TotalTransactions++
}

// Snapshot returns a copy of the current stats.
func (a *Aggregator) Snapshot() model.Stats {
	return a.stats
}
