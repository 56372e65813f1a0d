package reservation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// SweepExpired moves every active reservation whose due date has passed to
// expired and returns how many were transitioned. Running it again right
// away transitions nothing. Books stay unavailable unless the loan config
// enables ReleaseOnExpire, in which case they are released in the same
// transaction.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	now := s.clock()

	var expired []domain.Reservation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		expired, err = s.reservations.ExpireOverdue(txCtx, now)
		if err != nil {
			return fmt.Errorf("expire overdue: %w", err)
		}
		if !s.loan.ReleaseOnExpire || len(expired) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(expired))
		for i, r := range expired {
			ids[i] = r.BookID
		}
		if err := s.books.ReleaseMany(txCtx, ids); err != nil {
			return fmt.Errorf("release expired books: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		s.log.InfoContext(ctx, "reservations expired",
			slog.Int("count", len(expired)),
			slog.Bool("released", s.loan.ReleaseOnExpire),
		)
	}
	for _, r := range expired {
		s.publish(ctx, domain.EventReservationExpired, r)
	}

	return len(expired), nil
}
