package ledger

import "github.com/goodnatureofminers/arogya-ledger-backend/internal/model"

// DefaultLogCapacity is the number of recent transactions kept by the ledger.
const DefaultLogCapacity = 20

// Log is a bounded newest-first history of transactions.
// It is not safe for concurrent use; Ledger serializes access.
type Log struct {
	capacity int
	items    []model.Transaction
}

// NewLog constructs a Log holding at most capacity items.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &Log{
		capacity: capacity,
		items:    make([]model.Transaction, 0, capacity+1),
	}
}

// Append inserts tx at the front, evicting the oldest entry when the log is full.
func (l *Log) Append(tx model.Transaction) {
	l.items = append(l.items, model.Transaction{})
	copy(l.items[1:], l.items[:len(l.items)-1])
	l.items[0] = tx
	if len(l.items) > l.capacity {
		l.items = l.items[:l.capacity]
	}
}

// Snapshot returns a copy of the current contents, newest first.
func (l *Log) Snapshot() []model.Transaction {
	out := make([]model.Transaction, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of stored transactions.
func (l *Log) Len() int {
	return len(l.items)
}
