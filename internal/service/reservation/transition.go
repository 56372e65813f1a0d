package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Cancel moves an active reservation to cancelled and makes the book
// available again. It returns false without error when the reservation is
// not active.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.finish(ctx, id, domain.ReservationCancelled, nil, domain.EventReservationCancelled)
}

// Complete records the return of the book: the reservation becomes completed
// with returned_at set and the book becomes available. It returns false
// without error when the reservation is not active.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	now := s.clock()
	return s.finish(ctx, id, domain.ReservationCompleted, &now, domain.EventReservationCompleted)
}

func (s *Service) finish(
	ctx context.Context,
	id uuid.UUID,
	to domain.ReservationStatus,
	returnedAt *time.Time,
	event domain.ReservationEventType,
) (bool, error) {
	if !domain.CanTransition(domain.ReservationActive, to) {
		return false, fmt.Errorf("transition to %q: %w", to, domain.ErrConflict)
	}

	var (
		bookID  uuid.UUID
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		bookID, changed, err = s.reservations.Transition(txCtx, id, to, returnedAt)
		if err != nil {
			return fmt.Errorf("%s reservation: %w", to, err)
		}
		if !changed {
			return nil
		}
		if err := s.books.Release(txCtx, bookID); err != nil {
			return fmt.Errorf("release book: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if !changed {
		s.log.InfoContext(ctx, "reservation not active",
			slog.String("reservation_id", id.String()),
			slog.String("target", string(to)),
		)
		return false, nil
	}

	s.log.InfoContext(ctx, "reservation "+string(to),
		slog.String("reservation_id", id.String()),
		slog.String("book_id", bookID.String()),
	)
	s.publish(ctx, event, domain.Reservation{ID: id, BookID: bookID, Status: to})

	return true, nil
}
