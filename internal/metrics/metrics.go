// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/library-backend/internal/domain"
)

const namespace = "library"

// Metrics groups the collectors registered by New.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	ReservationEvents   *prometheus.CounterVec
	EventPublishFailed  *prometheus.CounterVec
	AssistantResponses  *prometheus.CounterVec
	AssistantCompletion prometheus.Histogram
}

// New creates a dedicated registry with Go and process collectors plus the
// service collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		}, []string{"method", "route"}),

		HTTPRequestsInProgress: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "HTTP requests currently being served.",
		}),

		ReservationEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_events_total",
			Help:      "Committed reservation transitions by event type.",
		}, []string{"type"}),

		EventPublishFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_event_publish_failures_total",
			Help:      "Reservation events the broker did not accept.",
		}, []string{"type"}),

		AssistantResponses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_responses_total",
			Help:      "Librarian assistant responses by kind.",
		}, []string{"kind"}),

		AssistantCompletion: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assistant_completion_duration_seconds",
			Help:      "Latency of completion calls.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveAssistant records the kind of an assistant response.
func (m *Metrics) ObserveAssistant(kind string) {
	m.AssistantResponses.WithLabelValues(kind).Inc()
}

// ---------------------------------------------------------------------------
// Decorators
// ---------------------------------------------------------------------------

type eventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// Publisher counts reservation events before handing them to next.
type Publisher struct {
	next eventPublisher
	m    *Metrics
}

// WrapPublisher decorates an event publisher with counters.
func (m *Metrics) WrapPublisher(next eventPublisher) *Publisher {
	return &Publisher{next: next, m: m}
}

// Publish implements the reservation event publisher.
func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	p.m.ReservationEvents.WithLabelValues(string(event.Type)).Inc()
	if err := p.next.Publish(ctx, event); err != nil {
		p.m.EventPublishFailed.WithLabelValues(string(event.Type)).Inc()
		return err
	}
	return nil
}

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Completer times completion calls.
type Completer struct {
	next completer
	m    *Metrics
}

// WrapCompleter decorates a completer with a latency histogram.
func (m *Metrics) WrapCompleter(next completer) *Completer {
	return &Completer{next: next, m: m}
}

// Complete implements librarian.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := c.next.Complete(ctx, prompt)
	c.m.AssistantCompletion.Observe(time.Since(start).Seconds())
	return out, err
}
