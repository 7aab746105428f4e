// internal/api/handler/realtime.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"farmvora/internal/auth"
	"farmvora/internal/domain"
	"farmvora/internal/realtime"
	"farmvora/internal/service"
	"farmvora/internal/util"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	refreshQueue = 16

	// ScopePending streams the admin approval queue instead of the
	// caller's own investments.
	ScopePending = "pending"
)

// Subscriber is the part of the change hub the stream needs.
type Subscriber interface {
	Subscribe(filter realtime.Filter, handler realtime.Handler) (cancel func())
}

// ConnectionGauge tracks open streams.
type ConnectionGauge interface {
	WebsocketConnected(delta int)
}

// StreamMessage is one frame pushed to the client.
type StreamMessage struct {
	Type string                    `json:"type"`
	Data []domain.InvestmentDetail `json:"data"`
}

// RealtimeHandler pushes a refreshed investment list over a websocket on
// every matching row change.
type RealtimeHandler struct {
	responder
	hub         Subscriber
	investments service.InvestmentService
	approvals   service.ApprovalService
	gauge       ConnectionGauge
	upgrader    websocket.Upgrader
}

// NewRealtimeHandler creates a new RealtimeHandler. gauge may be nil.
func NewRealtimeHandler(hub Subscriber, investments service.InvestmentService, approvals service.ApprovalService, gauge ConnectionGauge, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		responder:   responder{logger: logger},
		hub:         hub,
		investments: investments,
		approvals:   approvals,
		gauge:       gauge,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Tokens, not cookies, authenticate the stream.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Investments streams the caller's investments, or the pending queue for
// admins asking for ?scope=pending.
// GET /ws/investments
func (h *RealtimeHandler) Investments(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFrom(r.Context())
	if !actor.Authenticated() {
		h.respondWithError(w, util.ErrUnauthenticated)
		return
	}

	filter := realtime.Filter{Table: "investments", Column: "investor_id", Value: actor.UserID.String()}
	fetch := func(ctx context.Context) ([]domain.InvestmentDetail, error) {
		return h.investments.ListMine(ctx, actor)
	}
	kind := "investments"
	if r.URL.Query().Get("scope") == ScopePending {
		if !actor.Admin {
			h.respondWithError(w, util.ErrForbidden)
			return
		}
		filter = realtime.Filter{Table: "investments"}
		fetch = func(ctx context.Context) ([]domain.InvestmentDetail, error) {
			return h.approvals.ListPending(ctx, actor)
		}
		kind = "pending_investments"
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	if h.gauge != nil {
		h.gauge.WebsocketConnected(1)
		defer h.gauge.WebsocketConnected(-1)
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	refresh := make(chan struct{}, refreshQueue)
	unsubscribe := h.hub.Subscribe(filter, func(realtime.Event) {
		select {
		case refresh <- struct{}{}:
		default:
			h.logger.Warn("Dropping refresh for slow stream", "user_id", actor.UserID)
		}
	})
	defer unsubscribe()

	go h.readPump(conn, cancel)

	push := func() bool {
		list, err := fetch(ctx)
		if err != nil {
			h.logger.Error("Failed to refresh investments for stream", "user_id", actor.UserID, "error", err)
			return true
		}
		if list == nil {
			list = []domain.InvestmentDetail{}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(StreamMessage{Type: kind, Data: list}) == nil
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-refresh:
			if !push() {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and cancels the stream once the peer
// goes away.
func (h *RealtimeHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
