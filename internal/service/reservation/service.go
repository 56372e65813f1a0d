// Package reservation implements the reservation engine: creating holds on
// books and moving them through the active -> completed/cancelled/expired
// lifecycle while keeping book availability consistent.
package reservation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

type bookRepo interface {
	MarkUnavailable(ctx context.Context, id uuid.UUID) (bool, error)
	Release(ctx context.Context, id uuid.UUID) error
	ReleaseMany(ctx context.Context, ids []uuid.UUID) error
	IsReservable(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type reservationRepo interface {
	Insert(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	Transition(ctx context.Context, id uuid.UUID, to domain.ReservationStatus, returnedAt *time.Time) (uuid.UUID, bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service provides reservation operations.
type Service struct {
	books        bookRepo
	reservations reservationRepo
	tx           txManager
	events       eventPublisher
	loan         config.LoanConfig
	now          func() time.Time
	log          *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for created/due/returned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new reservation service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	reservations reservationRepo,
	tx txManager,
	events eventPublisher,
	loan config.LoanConfig,
	opts ...Option,
) *Service {
	s := &Service{
		books:        books,
		reservations: reservations,
		tx:           tx,
		events:       events,
		loan:         loan,
		now:          time.Now,
		log:          log.With("service", "reservation"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.loan.DefaultDays <= 0 {
		s.loan.DefaultDays = domain.DefaultLoanDays
	}
	if s.loan.MaxDays <= 0 {
		s.loan.MaxDays = domain.MaxLoanDays
	}
	return s
}

// clock returns the current time truncated to microseconds, the precision
// PostgreSQL keeps for timestamptz.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// publish sends an event after commit. Delivery failures are logged only:
// the committed state is authoritative.
func (s *Service) publish(ctx context.Context, typ domain.ReservationEventType, res domain.Reservation) {
	if s.events == nil {
		return
	}
	event := domain.ReservationEvent{
		Type:          typ,
		ReservationID: res.ID,
		BookID:        res.BookID,
		Status:        res.Status,
		OccurredAt:    s.clock(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.WarnContext(ctx, "publish reservation event",
			slog.String("type", string(typ)),
			slog.String("reservation_id", res.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
