package librarian

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Statistics aggregates catalog and reservation counters. It is read-only.
func (s *Service) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var (
		total, available int
		counts           domain.ReservationCounts
		top              []domain.BookReservationCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, available, err = s.books.AvailabilityCounts(gctx)
		if err != nil {
			return fmt.Errorf("count books: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = s.reservations.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		top, err = s.reservations.TopReserved(gctx, domain.TopBooksLimit)
		if err != nil {
			return fmt.Errorf("top reserved: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if top == nil {
		top = []domain.BookReservationCount{}
	}

	return &domain.Statistics{
		TotalBooks:          total,
		AvailableBooks:      available,
		UnavailableBooks:    total - available,
		ActiveReservations:  counts[domain.ReservationActive],
		ExpiredReservations: counts[domain.ReservationExpired],
		TopReserved:         top,
	}, nil
}
