package broadcast

// EventKind names a push event as observers see it.
type EventKind string

const (
	// EventNewTransaction carries one model.Transaction.
	EventNewTransaction EventKind = "new-transaction"
	// EventStatsUpdate carries a model.Stats snapshot.
	EventStatsUpdate EventKind = "stats-update"
	// EventTransactionsUpdate carries the full log snapshot, newest first.
	EventTransactionsUpdate EventKind = "transactions-update"
)

// Event is a single push payload.
type Event struct {
	Kind    EventKind
	Payload any
}
