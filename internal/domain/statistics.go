package domain

import "github.com/google/uuid"

// TopBooksLimit is the number of most reserved books reported in Statistics.
const TopBooksLimit = 5

// Statistics aggregates catalog and reservation counters.
type Statistics struct {
	TotalBooks          int
	AvailableBooks      int
	UnavailableBooks    int
	ActiveReservations  int
	ExpiredReservations int
	TopReserved         []BookReservationCount
}

// BookReservationCount is a book together with how many times it was reserved.
type BookReservationCount struct {
	BookID           uuid.UUID
	Title            string
	ReservationCount int
}

// ReservationCounts holds the number of reservations per status.
type ReservationCounts map[ReservationStatus]int

// Total returns the sum over all statuses.
func (c ReservationCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
