// Package librarian implements the library assistant. It turns free-text
// questions into catalog answers by asking an external completion service
// and grounding the titles it returns back into concrete books.
//
// The service holds no per-request state; one instance serves all callers.
package librarian

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Completer sends a prompt to a text completion backend and returns its raw
// output. The output is untrusted and may not follow the requested format.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	FindByTitle(ctx context.Context, title string, exact bool, available *bool) ([]domain.Book, error)
	IsReservable(ctx context.Context, id uuid.UUID) (bool, error)
	AvailabilityCounts(ctx context.Context) (total, available int, err error)
}

type categoryRepo interface {
	ListNames(ctx context.Context) ([]string, error)
}

type reservationRepo interface {
	ActiveByBook(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error)
	ActiveByBooks(ctx context.Context, bookIDs []uuid.UUID) ([]domain.Reservation, error)
	CountByStatus(ctx context.Context) (domain.ReservationCounts, error)
	TopReserved(ctx context.Context, limit int) ([]domain.BookReservationCount, error)
}

type queryLog interface {
	Record(ctx context.Context, text string) (*domain.Query, error)
	SetAnswer(ctx context.Context, id uuid.UUID, answer string) error
}

const (
	defaultTimeout      = 20 * time.Second
	defaultContextBooks = 20
	// maxGroundedBooks bounds the full availability-filtered set returned when
	// the completion names no titles.
	maxGroundedBooks = 100
)

// Service is the librarian assistant.
type Service struct {
	completer    Completer
	books        bookRepo
	categories   categoryRepo
	reservations reservationRepo
	queries      queryLog
	timeout      time.Duration
	contextBooks int
	now          func() time.Time
	log          *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for remaining-days computations.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithQueryLog records every question answered through Ask.
func WithQueryLog(q queryLog) Option {
	return func(s *Service) { s.queries = q }
}

// NewService creates a new librarian service.
func NewService(
	log *slog.Logger,
	completer Completer,
	books bookRepo,
	categories categoryRepo,
	reservations reservationRepo,
	cfg config.AssistantConfig,
	opts ...Option,
) *Service {
	s := &Service{
		completer:    completer,
		books:        books,
		categories:   categories,
		reservations: reservations,
		timeout:      cfg.Timeout,
		contextBooks: cfg.ContextBooks,
		now:          time.Now,
		log:          log.With("service", "librarian"),
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	if s.contextBooks <= 0 {
		s.contextBooks = defaultContextBooks
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
