package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/adapter/kafka"
	"github.com/heartmarshall/library-backend/internal/adapter/llm"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	categoryrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/category"
	queryrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/query"
	reservationrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/reservation"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/metrics"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
	"github.com/heartmarshall/library-backend/internal/service/librarian"
	"github.com/heartmarshall/library-backend/internal/service/querylog"
	"github.com/heartmarshall/library-backend/internal/service/reservation"
)

// Services is the wired service layer shared by the HTTP server and libctl.
type Services struct {
	Catalog      *catalog.Service
	Reservations *reservation.Service
	QueryLog     *querylog.Service
	Librarian    *librarian.Service

	// EventsBackend and AssistantBackend name what was wired, for /health.
	EventsBackend    string
	AssistantBackend string

	closers []io.Closer
}

type reservationPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// eventSink is what the reservation engine publishes to.
type eventSink interface {
	reservationPublisher
	io.Closer
}

// NewServices builds repositories, adapters and services on top of pool.
// m may be nil, in which case nothing is instrumented.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) (*Services, error) {
	books := bookrepo.New(pool)
	categories := categoryrepo.New(pool)
	reservations := reservationrepo.New(pool)
	queries := queryrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	svc := &Services{}

	sink, backend, err := newEventSink(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	svc.EventsBackend = backend
	svc.closers = append(svc.closers, sink)

	var events reservationPublisher = sink
	if m != nil {
		events = m.WrapPublisher(sink)
	}

	var completer librarian.Completer = llm.Disabled{}
	svc.AssistantBackend = "disabled"
	if cfg.Assistant.Enabled {
		completer = llm.New(cfg.Assistant)
		svc.AssistantBackend = "anthropic"
	}
	if m != nil {
		completer = m.WrapCompleter(completer)
	}

	svc.Catalog = catalog.NewService(logger, books, categories, txm)
	svc.Reservations = reservation.NewService(logger, books, reservations, txm, events, cfg.Loan)
	svc.QueryLog = querylog.NewService(logger, queries)
	svc.Librarian = librarian.NewService(logger, completer, books, categories, reservations, cfg.Assistant,
		librarian.WithQueryLog(svc.QueryLog),
	)

	return svc, nil
}

func newEventSink(cfg config.KafkaConfig) (eventSink, string, error) {
	if !cfg.Enabled() {
		return kafka.Noop{}, "noop", nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("init event publisher: %w", err)
	}
	return kafka.NewPublisher(producer, cfg.Topic), "kafka", nil
}

// Close releases adapter resources such as the Kafka producer.
func (s *Services) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
