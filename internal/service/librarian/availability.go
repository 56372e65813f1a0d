package librarian

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Availability describes whether a book can be reserved right now.
type Availability struct {
	BookID    uuid.UUID
	Title     string
	Available bool
	// DueAt and RemainingDays are set when the book is held by an active
	// reservation.
	DueAt         *time.Time
	RemainingDays *int
}

// Availability reports whether a book is reservable and, when it is held,
// when the current reservation is due.
func (s *Service) Availability(ctx context.Context, bookID uuid.UUID) (*Availability, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	ok, err := s.books.IsReservable(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("check reservable: %w", err)
	}

	out := &Availability{BookID: book.ID, Title: book.Title, Available: ok}
	if ok {
		return out, nil
	}

	res, err := s.reservations.ActiveByBook(ctx, bookID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Unavailable without an active reservation: an expired hold that
		// was not released.
		return out, nil
	case err != nil:
		return nil, fmt.Errorf("active reservation: %w", err)
	}

	days := RemainingDays(res.DueAt, s.now())
	out.DueAt = &res.DueAt
	out.RemainingDays = &days
	return out, nil
}

// RemainingDays returns the whole days left until due, rounded up and never
// negative.
func RemainingDays(due, now time.Time) int {
	left := due.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours() / 24))
}
