package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/broadcast"
	"go.uber.org/zap"
)

const sseHeartbeat = 15 * time.Second

// sseSink writes broadcast events as Server-Sent Events.
type sseSink struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// Send writes one event and flushes it to the client.
func (s sseSink) Send(ev broadcast.Event) error {
	b, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", ev.Kind, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", ev.Kind, b); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Ping writes a comment line so idle proxies keep the stream open.
func (s sseSink) Ping() error {
	if _, err := s.w.Write([]byte(": ping\n\n")); err != nil {
		return err
	}
	return s.rc.Flush()
}

// handleEvents streams ledger events until the client goes away, a write
// fails, or the broadcaster drops the subscription.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// The server write timeout would otherwise cut long-lived streams.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	sub := h.events.Subscribe()
	defer h.events.Unsubscribe(sub)
	logger := h.logger.With(zap.String("subscriber", sub.ID()))

	sink := sseSink{w: w, rc: rc}
	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				logger.Debug("event stream closed by broadcaster")
				return
			}
			if err := sink.Send(ev); err != nil {
				logger.Debug("event write failed", zap.Error(err))
				return
			}
		case <-heartbeat.C:
			if err := sink.Ping(); err != nil {
				logger.Debug("heartbeat write failed", zap.Error(err))
				return
			}
		}
	}
}
