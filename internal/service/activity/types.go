package activity

import (
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/ledger"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Recorder interface {
		Record(in ledger.Input) (model.Transaction, error)
	}
	Rand interface {
		Float64() float64
		IntN(n int) int
	}
	GeneratorMetrics interface {
		ObserveTick(emitted bool, txType model.TransactionType, err error, started time.Time)
	}
)
