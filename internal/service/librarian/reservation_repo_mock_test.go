package librarian

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ reservationRepo = &reservationRepoMock{}

type reservationRepoMock struct {
	ActiveByBookFunc  func(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error)
	ActiveByBooksFunc func(ctx context.Context, bookIDs []uuid.UUID) ([]domain.Reservation, error)
	CountByStatusFunc func(ctx context.Context) (domain.ReservationCounts, error)
	TopReservedFunc   func(ctx context.Context, limit int) ([]domain.BookReservationCount, error)

	calls struct {
		ActiveByBook []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		ActiveByBooks []struct {
			Ctx     context.Context
			BookIDs []uuid.UUID
		}
		CountByStatus []struct {
			Ctx context.Context
		}
		TopReserved []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockActiveByBook  sync.RWMutex
	lockActiveByBooks sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockTopReserved   sync.RWMutex
}

func (mock *reservationRepoMock) ActiveByBook(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error) {
	if mock.ActiveByBookFunc == nil {
		panic("reservationRepoMock.ActiveByBookFunc: method is nil but reservationRepo.ActiveByBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockActiveByBook.Lock()
	mock.calls.ActiveByBook = append(mock.calls.ActiveByBook, callInfo)
	mock.lockActiveByBook.Unlock()
	return mock.ActiveByBookFunc(ctx, bookID)
}

func (mock *reservationRepoMock) ActiveByBookCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockActiveByBook.RLock()
	calls := mock.calls.ActiveByBook
	mock.lockActiveByBook.RUnlock()
	return calls
}

func (mock *reservationRepoMock) ActiveByBooks(ctx context.Context, bookIDs []uuid.UUID) ([]domain.Reservation, error) {
	if mock.ActiveByBooksFunc == nil {
		panic("reservationRepoMock.ActiveByBooksFunc: method is nil but reservationRepo.ActiveByBooks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BookIDs []uuid.UUID
	}{Ctx: ctx, BookIDs: bookIDs}
	mock.lockActiveByBooks.Lock()
	mock.calls.ActiveByBooks = append(mock.calls.ActiveByBooks, callInfo)
	mock.lockActiveByBooks.Unlock()
	return mock.ActiveByBooksFunc(ctx, bookIDs)
}

func (mock *reservationRepoMock) ActiveByBooksCalls() []struct {
	Ctx     context.Context
	BookIDs []uuid.UUID
} {
	mock.lockActiveByBooks.RLock()
	calls := mock.calls.ActiveByBooks
	mock.lockActiveByBooks.RUnlock()
	return calls
}

func (mock *reservationRepoMock) CountByStatus(ctx context.Context) (domain.ReservationCounts, error) {
	if mock.CountByStatusFunc == nil {
		panic("reservationRepoMock.CountByStatusFunc: method is nil but reservationRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *reservationRepoMock) CountByStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *reservationRepoMock) TopReserved(ctx context.Context, limit int) ([]domain.BookReservationCount, error) {
	if mock.TopReservedFunc == nil {
		panic("reservationRepoMock.TopReservedFunc: method is nil but reservationRepo.TopReserved was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockTopReserved.Lock()
	mock.calls.TopReserved = append(mock.calls.TopReserved, callInfo)
	mock.lockTopReserved.Unlock()
	return mock.TopReservedFunc(ctx, limit)
}

func (mock *reservationRepoMock) TopReservedCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockTopReserved.RLock()
	calls := mock.calls.TopReserved
	mock.lockTopReserved.RUnlock()
	return calls
}
