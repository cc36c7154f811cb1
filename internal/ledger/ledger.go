// Package ledger owns the recent-transaction log and dashboard stats and is
// the only component allowed to mutate them.
package ledger

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/clock"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"go.uber.org/zap"
)

const (
	tamperProbability = 0.1
	syntheticRecords  = 50
	hashTokenLength   = 16

	verifyDetails  = "SHA-256 hash verification completed"
	decryptDetails = "AES-256 decryption completed for authorized access"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Ledger serializes every mutation of the transaction log and stats.
type Ledger struct {
	mu         sync.Mutex
	log        *Log
	stats      *Aggregator
	ids        idGenerator
	rnd        Rand
	now        func() time.Time
	publishers []Publisher
	metrics    Metrics
	logger     *zap.Logger
}

// New builds a Ledger seeded with stats and an empty log of DefaultLogCapacity.
// A nil rnd selects a time-seeded PCG source.
func New(seed model.Stats, rnd Rand, metrics Metrics, logger *zap.Logger) (*Ledger, error) {
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Ledger{
		log:     NewLog(DefaultLogCapacity),
		stats:   NewAggregator(seed),
		rnd:     rnd,
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// AddPublisher registers p to be notified after every successful Record.
func (l *Ledger) AddPublisher(p Publisher) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.publishers = append(l.publishers, p)
}

// Record validates in, builds the transaction, appends it, bumps the counter
// and notifies publishers as one atomic step.
func (l *Ledger) Record(in Input) (model.Transaction, error) {
	started := time.Now()
	if err := in.Validate(); err != nil {
		l.metrics.ObserveRecord(in.Type, "", err, started)
		return model.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.build(in)
	l.log.Append(tx)
	l.stats.IncrementTransactionCount()
	stats := l.stats.Snapshot()
	for _, p := range l.publishers {
		p.Publish(tx, stats)
	}

	l.metrics.ObserveRecord(tx.Type, tx.Status, nil, started)
	l.logger.Debug("transaction recorded",
		zap.String("id", tx.ID),
		zap.String("type", string(tx.Type)),
		zap.String("record_id", tx.RecordID),
		zap.String("status", string(tx.Status)),
		zap.Uint64("total_transactions", stats.TotalTransactions),
	)
	return tx, nil
}

// build must be called with l.mu held: it consumes the shared rand and id state.
func (l *Ledger) build(in Input) model.Transaction {
	now := clock.Millis(l.now())
	tx := model.Transaction{
		ID:        l.ids.next(now),
		Type:      in.Type,
		RecordID:  in.RecordID,
		Timestamp: now,
		Status:    model.StatusSuccess,
	}

	switch in.Type {
	case model.AddRecord:
		tx.PatientName = in.PatientName
		tx.Condition = in.Condition
		tx.Encrypted = true
		tx.Hash = "hash_" + l.token(hashTokenLength)
	case model.VerifyIntegrity:
		tx.Details = verifyDetails
		tx.Status = model.StatusValid
		if l.rnd.Float64() < tamperProbability {
			tx.Status = model.StatusTampered
		}
	case model.DecryptRecord:
		tx.Details = decryptDetails
	default:
		tx.RecordID = fmt.Sprintf("REC%03d", l.rnd.IntN(syntheticRecords)+1)
		tx.Automated = true
	}
	return tx
}

func (l *Ledger) token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[l.rnd.IntN(len(base36))]
	}
	return string(b)
}

// Stats returns the current stats snapshot.
func (l *Ledger) Stats() model.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats.Snapshot()
}

// Transactions returns the recent transactions, newest first.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.log.Snapshot()
}

// View calls fn with a consistent stats and log snapshot while no mutation can
// run. fn must not call back into the Ledger.
func (l *Ledger) View(fn func(stats model.Stats, txs []model.Transaction)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.stats.Snapshot(), l.log.Snapshot())
}
