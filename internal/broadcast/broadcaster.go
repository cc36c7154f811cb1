// Package broadcast fans ledger changes out to connected observers.
package broadcast

import (
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
	"go.uber.org/zap"
)

const (
	// DefaultBuffer is the per-subscriber queue length.
	DefaultBuffer = 64
	// eventsPerPublish is the number of events a publish or subscribe enqueues.
	eventsPerPublish = 2
)

// Broadcaster keeps the registry of subscribers and pushes every published
// transaction to each of them without blocking the publisher. A subscriber
// whose queue cannot take a full event pair is dropped.
type Broadcaster struct {
	mu      sync.Mutex
	source  Source
	subs    map[string]*Subscriber
	buffer  int
	metrics Metrics
	logger  *zap.Logger
}

// New constructs a Broadcaster reading initial snapshots from source.
func New(source Source, buffer int, metrics Metrics, logger *zap.Logger) (*Broadcaster, error) {
	if source == nil {
		return nil, errors.New("broadcast source is required")
	}
	if metrics == nil {
		return nil, errors.New("broadcast metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if buffer < eventsPerPublish {
		buffer = eventsPerPublish
	}
	return &Broadcaster{
		source:  source,
		subs:    make(map[string]*Subscriber),
		buffer:  buffer,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Subscribe registers a new observer and queues the current stats followed by
// the current transaction log before returning.
func (b *Broadcaster) Subscribe() *Subscriber {
	sub := newSubscriber(b.buffer)
	b.source.View(func(stats model.Stats, txs []model.Transaction) {
		b.mu.Lock()
		defer b.mu.Unlock()

		sub.events <- Event{Kind: EventStatsUpdate, Payload: stats}
		sub.events <- Event{Kind: EventTransactionsUpdate, Payload: txs}
		b.subs[sub.id] = sub
		b.metrics.SetSubscribers(len(b.subs))
	})
	b.logger.Info("subscriber connected", zap.String("subscriber", sub.id))
	return sub
}

// Unsubscribe removes sub and closes its event channel. Calling it for an
// already removed subscriber is a no-op.
func (b *Broadcaster) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	removed := b.remove(sub)
	b.mu.Unlock()

	if removed {
		b.logger.Info("subscriber disconnected", zap.String("subscriber", sub.id))
	}
}

// Publish delivers tx and stats to every registered subscriber.
func (b *Broadcaster) Publish(tx model.Transaction, stats model.Stats) {
	started := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered, dropped := 0, 0
	for _, sub := range b.subs {
		// Only Publish and Subscribe send, both under b.mu, so free space can
		// only grow between this check and the sends below.
		if cap(sub.events)-len(sub.events) < eventsPerPublish {
			b.remove(sub)
			dropped++
			b.logger.Warn("subscriber fell behind, dropping",
				zap.String("subscriber", sub.id),
				zap.String("tx", tx.ID),
			)
			continue
		}
		sub.events <- Event{Kind: EventNewTransaction, Payload: tx}
		sub.events <- Event{Kind: EventStatsUpdate, Payload: stats}
		delivered++
	}
	b.metrics.ObservePublish(delivered, dropped, started)
}

// Len returns the number of registered subscribers.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close removes every subscriber, closing their channels.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		b.remove(sub)
	}
}

// remove must be called with b.mu held.
func (b *Broadcaster) remove(sub *Subscriber) bool {
	if _, ok := b.subs[sub.id]; !ok {
		return false
	}
	delete(b.subs, sub.id)
	close(sub.events)
	b.metrics.SetSubscribers(len(b.subs))
	return true
}
