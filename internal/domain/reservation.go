package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLoanDays is the loan period used when a reservation does not specify one.
	DefaultLoanDays = 14
	// MaxLoanDays is the longest loan a single reservation may request.
	MaxLoanDays = 30
)

// ReservationStatus is the lifecycle state of a reservation.
// Active is the only non-terminal state.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationExpired   ReservationStatus = "expired"
)

func (s ReservationStatus) String() string { return string(s) }

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationActive, ReservationCompleted, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to ReservationStatus) bool {
	if from != ReservationActive {
		return false
	}
	switch to {
	case ReservationCompleted, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

// Reservation is a time-bounded hold of one book by one person.
// It is owned by its book and removed together with it.
type Reservation struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	BookTitle  string
	UserName   string
	UserEmail  string
	CreatedAt  time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
	Status     ReservationStatus
	Notes      string
}

// DueDate returns createdAt shifted by loanDays whole days.
func DueDate(createdAt time.Time, loanDays int) time.Time {
	return createdAt.Add(time.Duration(loanDays) * 24 * time.Hour)
}

// ReservationFilter contains filtering/pagination parameters for reservation listings.
type ReservationFilter struct {
	BookID *uuid.UUID
	Status *ReservationStatus
	Email  *string
	Limit  int
	Offset int
}

// ReservationEventType names a reservation lifecycle event.
type ReservationEventType string

const (
	EventReservationCreated   ReservationEventType = "reservation.created"
	EventReservationCancelled ReservationEventType = "reservation.cancelled"
	EventReservationCompleted ReservationEventType = "reservation.completed"
	EventReservationExpired   ReservationEventType = "reservation.expired"
	EventReservationDeleted   ReservationEventType = "reservation.deleted"
)

// ReservationEvent is published after a reservation transition has been committed.
type ReservationEvent struct {
	Type          ReservationEventType `json:"type"`
	ReservationID uuid.UUID            `json:"reservation_id"`
	BookID        uuid.UUID            `json:"book_id"`
	Status        ReservationStatus    `json:"status"`
	OccurredAt    time.Time            `json:"occurred_at"`
}
