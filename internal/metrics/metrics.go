// Package metrics exposes Prometheus collectors for HTTP traffic and for
// committed debate events.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/event"
	"github.com/heartmarshall/debate-backend/internal/transport/middleware"
)

const namespace = "debate"

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inFlight  prometheus.Gauge
	events    *prometheus.CounterVec
	turns     prometheus.Counter
	completed *prometheus.CounterVec
	forfeits  prometheus.Counter
	txRetries *prometheus.CounterVec
	running   prometheus.Gauge
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of HTTP requests by status code, method and route.",
		}, []string{"status_code", "method", "path"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by status code, method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status_code", "method", "path"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_progress",
			Help:      "HTTP requests currently being served.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Committed domain events by type.",
		}, []string{"type"}),
		turns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_advanced_total",
			Help:      "Turn number increments across all debates.",
		}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debates_completed_total",
			Help:      "Completed debates by winning side; tie when votes are equal.",
		}, []string{"winner"}),
		forfeits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participants_forfeited_total",
			Help:      "Participants marked as forfeited.",
		}),
		txRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_retries_total",
			Help:      "Transactions retried after a write conflict, by operation.",
		}, []string{"operation"}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "debates_in_progress",
			Help:      "Debates started minus debates completed since process start.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.inFlight,
		m.events, m.turns, m.completed, m.forfeits, m.txRetries, m.running,
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Register subscribes the event counters to bus.
func (m *Metrics) Register(bus *event.Bus) {
	bus.SubscribeAll(m.HandleEvent)
}

// HandleEvent updates counters for one committed event.
func (m *Metrics) HandleEvent(_ context.Context, e domain.Event) {
	m.events.WithLabelValues(e.Type.String()).Inc()

	switch e.Type {
	case domain.EventDebateStarted:
		m.running.Inc()
	case domain.EventTurnAdvanced:
		m.turns.Inc()
	case domain.EventDebateCompleted:
		winner := "tie"
		if e.WinningRole != nil {
			winner = e.WinningRole.String()
		}
		m.completed.WithLabelValues(winner).Inc()
		m.running.Dec()
	case domain.EventParticipantForfeited:
		m.forfeits.Inc()
	}
}

// ConflictRetried counts one retry of operation after a write conflict.
func (m *Metrics) ConflictRetried(operation string) {
	m.txRetries.WithLabelValues(operation).Inc()
}

// Middleware records request count, latency and in-flight requests. Paths
// are labelled with the chi route pattern to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		sw := middleware.NewStatusWriter(w)
		next.ServeHTTP(sw, r)

		path := routePattern(r)
		status := strconv.Itoa(sw.Status())
		m.requests.WithLabelValues(status, r.Method, path).Inc()
		m.duration.WithLabelValues(status, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
