package reservation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Get returns a reservation by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// List returns reservations matching the input filters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Reservation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.reservations.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}

// Delete removes a reservation. Deleting an active reservation releases its
// book in the same transaction.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted *domain.Reservation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.reservations.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete reservation: %w", err)
		}
		if deleted.Status != domain.ReservationActive {
			return nil
		}
		if err := s.books.Release(txCtx, deleted.BookID); err != nil {
			return fmt.Errorf("release book: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "reservation deleted",
		slog.String("reservation_id", id.String()),
		slog.String("status", string(deleted.Status)),
	)
	s.publish(ctx, domain.EventReservationDeleted, *deleted)

	return nil
}
