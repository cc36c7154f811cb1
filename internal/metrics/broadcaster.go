package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcasterSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "arogya",
		Subsystem: "broadcaster",
		Name:      "subscribers",
		Help:      "Number of live event subscribers.",
	})

	broadcasterDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "broadcaster",
		Name:      "delivered_total",
		Help:      "Count of subscribers a transaction was delivered to.",
	})

	broadcasterDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "arogya",
		Subsystem: "broadcaster",
		Name:      "dropped_subscribers_total",
		Help:      "Count of subscribers dropped for not keeping up.",
	})

	broadcasterPublishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arogya",
		Subsystem: "broadcaster",
		Name:      "publish_duration_seconds",
		Help:      "Duration of fanning a transaction out to subscribers.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
	})
)

// Broadcaster tracks metrics for event fan-out.
type Broadcaster struct{}

// NewBroadcaster creates a Broadcaster metrics collector.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// SetSubscribers updates the live subscriber gauge.
func (m Broadcaster) SetSubscribers(n int) {
	broadcasterSubscribers.Set(float64(n))
}

// ObservePublish records a single publish fan-out.
func (m Broadcaster) ObservePublish(delivered, dropped int, started time.Time) {
	broadcasterDeliveredTotal.Add(float64(delivered))
	broadcasterDroppedTotal.Add(float64(dropped))
	broadcasterPublishDuration.Observe(time.Since(started).Seconds())
}
