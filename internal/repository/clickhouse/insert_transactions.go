package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

// InsertTransactions appends ledger transactions to the archive.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_transactions (
	id,
	type,
	record_id,
	patient_name,
	condition,
	timestamp,
	status,
	encrypted,
	hash,
	details,
	automated
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.ID,
			string(tx.Type),
			tx.RecordID,
			tx.PatientName,
			tx.Condition,
			tx.Timestamp,
			string(tx.Status),
			tx.Encrypted,
			tx.Hash,
			tx.Details,
			tx.Automated,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
