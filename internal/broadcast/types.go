package broadcast

import (
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source hands out a consistent stats and log snapshot. fn runs while no
	// ledger mutation can happen, which keeps a new subscriber's initial pair
	// and its first published event contiguous.
	Source interface {
		View(fn func(stats model.Stats, txs []model.Transaction))
	}
	Metrics interface {
		SetSubscribers(n int)
		ObservePublish(delivered, dropped int, started time.Time)
	}
)
