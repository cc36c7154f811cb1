// Package archive copies committed ledger transactions into the audit archive.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"github.com/goodnatureofminers/arogya-ledger-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Writer is a ledger publisher that batches transactions into the archive.
// Publish never blocks: when the queue is full the transaction is dropped
// from the archive and counted. The in-memory ledger is unaffected.
type Writer struct {
	logger  *zap.Logger
	repo    Repository
	metrics Metrics
	batcher *batcher.Batcher[model.Transaction]
}

// NewWriter constructs a Writer. Non-positive flushSize or flushInterval fall
// back to defaults.
func NewWriter(repo Repository, metrics Metrics, flushSize int, flushInterval time.Duration, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if flushSize <= 0 {
		flushSize = defaultFlushSize
	}
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}

	w := &Writer{
		logger:  logger.Named("archive_writer"),
		repo:    repo,
		metrics: metrics,
	}
	w.batcher = batcher.New(w.logger, w.flush, flushSize, flushInterval, defaultFlushRPS)
	return w, nil
}

// Start begins flushing queued transactions in the background.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes what is queued and waits for the background loop to exit.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Publish enqueues tx for archiving.
func (w *Writer) Publish(tx model.Transaction, _ model.Stats) {
	accepted := w.batcher.TryAdd(tx)
	w.metrics.ObserveEnqueue(accepted)
	if !accepted {
		w.logger.Warn("archive queue full, transaction not archived", zap.String("id", tx.ID))
	}
}

func (w *Writer) flush(ctx context.Context, txs []model.Transaction) error {
	started := time.Now()
	err := w.repo.InsertTransactions(ctx, txs)
	w.metrics.ObserveFlush(len(txs), err, started)
	return err
}
