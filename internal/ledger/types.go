package ledger

import (
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Rand is the randomness source behind simulated outcomes.
	Rand interface {
		Float64() float64
		IntN(n int) int
	}
	// Publisher receives every committed transaction together with the stats it produced.
	// Implementations must not block: they run inside the ledger critical section.
	Publisher interface {
		Publish(tx model.Transaction, stats model.Stats)
	}
	Metrics interface {
		ObserveRecord(txType model.TransactionType, status model.TransactionStatus, err error, started time.Time)
	}
)
