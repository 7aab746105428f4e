// Package realtime fans row change events out to in-process subscribers.
package realtime

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Change actions as reported by the database trigger.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Event is one row change. Record is nil for deletes and OldRecord is nil
// for inserts. Records carry only the key columns listed in keyColumns;
// subscribers refetch anything else.
type Event struct {
	Table     string         `json:"table"`
	Action    string         `json:"action"`
	Record    map[string]any `json:"record"`
	OldRecord map[string]any `json:"old_record"`
}

// keyColumns are the row columns the change trigger includes in a payload.
// A column absent from the row is omitted.
var keyColumns = []string{"id", "investor_id", "user_id", "project_id", "status"}

// Filter selects events for one table, optionally narrowed to rows whose
// Column equals Value in either the new or the old record.
type Filter struct {
	Table  string
	Column string
	Value  string
}

// Match reports whether e passes the filter.
func (f Filter) Match(e Event) bool {
	if f.Table != "" && f.Table != e.Table {
		return false
	}
	if f.Column == "" {
		return true
	}
	return columnEquals(e.Record, f.Column, f.Value) || columnEquals(e.OldRecord, f.Column, f.Value)
}

func columnEquals(record map[string]any, column, value string) bool {
	if record == nil {
		return false
	}
	v, ok := record[column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == value
}

// Handler consumes a matching event. Handlers run on the publisher's
// goroutine and must not block.
type Handler func(Event)

type subscription struct {
	filter  Filter
	handler Handler
}

// Hub is the in-process change feed. Use Subscribe to register interest and
// the returned cancel func to stop it.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscription
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint64]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for events matching filter. The returned
// cancel func is idempotent.
func (h *Hub) Subscribe(filter Filter, handler Handler) (cancel func()) {
	if filter.Column != "" && !slices.Contains(keyColumns, filter.Column) {
		h.logger.Warn("Filter column is not carried in change events", "table", filter.Table, "column", filter.Column)
	}
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = subscription{filter: filter, handler: handler}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish delivers e to every matching subscriber. A panicking handler is
// logged and does not stop delivery to the others.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	matched := make([]Handler, 0, len(h.subs))
	for _, s := range h.subs {
		if s.filter.Match(e) {
			matched = append(matched, s.handler)
		}
	}
	h.mu.RUnlock()

	for _, handler := range matched {
		h.deliver(handler, e)
	}
}

func (h *Hub) deliver(handler Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Change handler panicked", "table", e.Table, "action", e.Action, "panic", r)
		}
	}()
	handler(e)
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
