package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

// Channel is the NOTIFY channel the row change trigger publishes on.
const Channel = "farmvora_changes"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// EventCounter is what the listener reports received events to.
type EventCounter interface {
	ChangeEvent(table string)
}

// ListenerSource feeds a Hub from Postgres LISTEN/NOTIFY.
type ListenerSource struct {
	listener *pq.Listener
	hub      *Hub
	counter  EventCounter
	logger   *slog.Logger
}

// NewListenerSource opens a dedicated listening connection for dsn. The
// connection reconnects on its own; Run must be called to start delivery.
func NewListenerSource(dsn string, hub *Hub, counter EventCounter, logger *slog.Logger) *ListenerSource {
	report := func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			logger.Warn("Change listener connection problem", "event", ev, "error", err)
		case pq.ListenerEventReconnected:
			logger.Info("Change listener reconnected")
		}
	}
	return &ListenerSource{
		listener: pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, report),
		hub:      hub,
		counter:  counter,
		logger:   logger,
	}
}

// Run listens until ctx is done. It returns nil on cancellation.
func (s *ListenerSource) Run(ctx context.Context) error {
	if err := s.listener.Listen(Channel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", Channel, err)
	}
	s.logger.Info("Change listener started", "channel", Channel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-s.listener.Notify:
			if !ok {
				return nil
			}
			// nil is sent after a reconnect; changes may have been missed.
			if n == nil {
				continue
			}
			s.dispatch(n.Extra)
		case <-ticker.C:
			if err := s.listener.Ping(); err != nil {
				s.logger.Warn("Change listener ping failed", "error", err)
			}
		}
	}
}

func (s *ListenerSource) dispatch(payload string) {
	event, err := DecodeEvent(payload)
	if err != nil {
		s.logger.Error("Dropping malformed change event", "error", err)
		return
	}
	if s.counter != nil {
		s.counter.ChangeEvent(event.Table)
	}
	s.hub.Publish(event)
}

// Close stops listening and closes the connection.
func (s *ListenerSource) Close() error {
	return s.listener.Close()
}

// DecodeEvent parses a trigger payload.
func DecodeEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("failed to decode change event: %w", err)
	}
	if e.Table == "" {
		return Event{}, fmt.Errorf("change event has no table")
	}
	return e, nil
}
