// Package activity produces synthetic ledger traffic on a timer.
package activity

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/clock"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/ledger"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"go.uber.org/zap"
)

// GeneratorService periodically records a random synthetic transaction.
type GeneratorService struct {
	logger      *zap.Logger
	recorder    Recorder
	metrics     GeneratorMetrics
	rnd         Rand
	sleep       func(context.Context, time.Duration) error
	interval    time.Duration
	probability float64
}

// NewGeneratorService builds a GeneratorService. Zero interval or probability
// select the defaults (5s, 0.3).
func NewGeneratorService(
	recorder Recorder,
	metrics GeneratorMetrics,
	interval time.Duration,
	probability float64,
	logger *zap.Logger,
) (*GeneratorService, error) {
	if recorder == nil {
		return nil, errors.New("activity recorder is required")
	}
	if metrics == nil {
		return nil, errors.New("activity generator metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	if probability <= 0 {
		probability = defaultProbability
	}
	if probability > 1 {
		return nil, errors.New("activity probability must be within (0, 1]")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := uint64(time.Now().UnixNano())

	return &GeneratorService{
		logger:      logger,
		recorder:    recorder,
		metrics:     metrics,
		rnd:         rand.New(rand.NewPCG(seed, seed>>3)),
		sleep:       clock.SleepWithContext,
		interval:    interval,
		probability: probability,
	}, nil
}

// Run ticks until the context is canceled.
func (s *GeneratorService) Run(ctx context.Context) error {
	s.logger.Info("activity generator started",
		zap.Duration("interval", s.interval),
		zap.Float64("probability", s.probability),
	)
	for {
		if err := s.sleep(ctx, s.interval); err != nil {
			return err
		}
		s.tick()
	}
}

func (s *GeneratorService) tick() {
	started := time.Now()
	if s.rnd.Float64() >= s.probability {
		s.metrics.ObserveTick(false, "", nil, started)
		return
	}

	txType := model.SyntheticTypes[s.rnd.IntN(len(model.SyntheticTypes))]
	tx, err := s.recorder.Record(ledger.SyntheticInput(txType))
	s.metrics.ObserveTick(true, txType, err, started)
	if err != nil {
		s.logger.Error("record synthetic transaction failed", zap.String("type", string(txType)), zap.Error(err))
		return
	}
	s.logger.Debug("synthetic transaction recorded",
		zap.String("id", tx.ID),
		zap.String("type", string(tx.Type)),
		zap.String("record_id", tx.RecordID),
	)
}
