// Package metrics holds the Prometheus collectors of the service. A nil
// *Metrics is valid and records nothing, so components can be built without
// one in tests.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "farmvora"

// Metrics is a registry plus the collectors the service records into.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	procedures    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	changeEvents  *prometheus.CounterVec
	wsClients     prometheus.Gauge
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		procedures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "procedures",
			Name:      "calls_total",
			Help:      "Stored procedure calls by outcome.",
		}, []string{"procedure", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "deliveries_total",
			Help:      "In-app notification deliveries by outcome.",
		}, []string{"type", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "investments",
			Name:      "submitted_total",
			Help:      "Investment requests submitted, by admission kind.",
		}, []string{"admission"}),
		changeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "change_events_total",
			Help:      "Row change events received from the database.",
		}, []string{"table"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "websocket_clients",
			Help:      "Currently connected websocket clients.",
		}),
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.procedures,
		m.notifications,
		m.submissions,
		m.changeEvents,
		m.wsClients,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument records request count and duration by chi route pattern.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		method := strings.ToUpper(r.Method)
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// ProcedureCalled records one procedure call. A non-nil err counts as a failure.
func (m *Metrics) ProcedureCalled(procedure string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.procedures.WithLabelValues(procedure, outcome).Inc()
}

// NotificationDelivered records a best-effort notification outcome.
func (m *Metrics) NotificationDelivered(kind string, err error) {
	if m == nil {
		return
	}
	outcome := "delivered"
	if err != nil {
		outcome = "failed"
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) InvestmentSubmitted(admission string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(admission).Inc()
}

func (m *Metrics) ChangeEvent(table string) {
	if m == nil {
		return
	}
	m.changeEvents.WithLabelValues(table).Inc()
}

// WebsocketConnected adjusts the connected client gauge by delta.
func (m *Metrics) WebsocketConnected(delta int) {
	if m == nil {
		return
	}
	m.wsClients.Add(float64(delta))
}
