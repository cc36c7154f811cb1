package archive

import (
	"context"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
	}
	Metrics interface {
		ObserveEnqueue(accepted bool)
		ObserveFlush(rows int, err error, started time.Time)
	}
)
