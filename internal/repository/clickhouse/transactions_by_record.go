package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

const defaultAuditLimit = 100

// TransactionsByRecord returns archived transactions for a record, newest first.
// A non-positive limit falls back to defaultAuditLimit.
func (r *Repository) TransactionsByRecord(ctx context.Context, recordID string, limit int) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_record", err, start)
	}()

	if recordID == "" {
		err = errors.New("record id is required")
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	const query = `
SELECT
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
FROM ledger_transactions
WHERE record_id = ?
ORDER BY timestamp DESC, id DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, recordID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query transactions by record: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var (
			tx             model.Transaction
			txType, status string
		)
		if err = rows.Scan(
			&tx.ID,
			&txType,
			&tx.RecordID,
			&tx.PatientName,
			&tx.Condition,
			&tx.Timestamp,
			&status,
			&tx.Encrypted,
			&tx.Hash,
			&tx.Details,
			&tx.Automated,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = model.TransactionType(txType)
		tx.Status = model.TransactionStatus(status)
		tx.Timestamp = tx.Timestamp.UTC()

		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
