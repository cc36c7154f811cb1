package transport

import (
	"context"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/broadcast"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/ledger"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		Record(in ledger.Input) (model.Transaction, error)
		Stats() model.Stats
		Transactions() []model.Transaction
	}
	Events interface {
		Subscribe() *broadcast.Subscriber
		Unsubscribe(sub *broadcast.Subscriber)
	}
	Records interface {
		List() []model.PatientRecord
		Get(recordID string) (model.PatientRecord, error)
	}
	AuditTrail interface {
		TransactionsByRecord(ctx context.Context, recordID string, limit int) ([]model.Transaction, error)
	}
)
