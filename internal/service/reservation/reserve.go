package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Reserve creates an active reservation and marks the book unavailable.
// The availability check and the insert happen in one transaction through a
// conditional update, so of two concurrent reserves on the same book exactly
// one succeeds and the other gets domain.ErrBookUnavailable.
func (s *Service) Reserve(ctx context.Context, input ReserveInput) (*domain.Reservation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	loanDays := input.LoanDays
	if loanDays == 0 {
		loanDays = s.loan.DefaultDays
	}
	if loanDays > s.loan.MaxDays {
		return nil, domain.NewValidationError("loan_days", fmt.Sprintf("max %d days", s.loan.MaxDays))
	}

	now := s.clock()
	res := &domain.Reservation{
		ID:        uuid.New(),
		BookID:    input.BookID,
		UserName:  strings.TrimSpace(input.UserName),
		UserEmail: strings.TrimSpace(input.UserEmail),
		CreatedAt: now,
		DueAt:     domain.DueDate(now, loanDays),
		Status:    domain.ReservationActive,
		Notes:     strings.TrimSpace(input.Notes),
	}

	var created *domain.Reservation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.books.MarkUnavailable(txCtx, res.BookID)
		if err != nil {
			return fmt.Errorf("mark book unavailable: %w", err)
		}
		if !ok {
			exists, err := s.books.Exists(txCtx, res.BookID)
			if err != nil {
				return fmt.Errorf("check book: %w", err)
			}
			if !exists {
				return fmt.Errorf("book %s: %w", res.BookID, domain.ErrNotFound)
			}
			return fmt.Errorf("book %s: %w", res.BookID, domain.ErrBookUnavailable)
		}

		if err := s.reservations.Insert(txCtx, res); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}

		created, err = s.reservations.GetByID(txCtx, res.ID)
		if err != nil {
			return fmt.Errorf("reload reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", created.ID.String()),
		slog.String("book_id", created.BookID.String()),
		slog.Int("loan_days", loanDays),
	)
	s.publish(ctx, domain.EventReservationCreated, *created)

	return created, nil
}

// IsReservable reports whether the book is available and has no active
// reservation. Returns domain.ErrNotFound for an unknown book.
func (s *Service) IsReservable(ctx context.Context, bookID uuid.UUID) (bool, error) {
	ok, err := s.books.IsReservable(ctx, bookID)
	if err != nil {
		return false, fmt.Errorf("check reservable: %w", err)
	}
	return ok, nil
}
