package librarian

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListFunc               func(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	FindByTitleFunc        func(ctx context.Context, title string, exact bool, available *bool) ([]domain.Book, error)
	IsReservableFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	AvailabilityCountsFunc func(ctx context.Context) (int, int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.BookFilter
		}
		FindByTitle []struct {
			Ctx       context.Context
			Title     string
			Exact     bool
			Available *bool
		}
		IsReservable []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AvailabilityCounts []struct {
			Ctx context.Context
		}
	}
	lockGetByID            sync.RWMutex
	lockList               sync.RWMutex
	lockFindByTitle        sync.RWMutex
	lockIsReservable       sync.RWMutex
	lockAvailabilityCounts sync.RWMutex
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *bookRepoMock) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookRepoMock.ListFunc: method is nil but bookRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BookFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *bookRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.BookFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *bookRepoMock) FindByTitle(ctx context.Context, title string, exact bool, available *bool) ([]domain.Book, error) {
	if mock.FindByTitleFunc == nil {
		panic("bookRepoMock.FindByTitleFunc: method is nil but bookRepo.FindByTitle was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Title     string
		Exact     bool
		Available *bool
	}{Ctx: ctx, Title: title, Exact: exact, Available: available}
	mock.lockFindByTitle.Lock()
	mock.calls.FindByTitle = append(mock.calls.FindByTitle, callInfo)
	mock.lockFindByTitle.Unlock()
	return mock.FindByTitleFunc(ctx, title, exact, available)
}

func (mock *bookRepoMock) FindByTitleCalls() []struct {
	Ctx       context.Context
	Title     string
	Exact     bool
	Available *bool
} {
	mock.lockFindByTitle.RLock()
	calls := mock.calls.FindByTitle
	mock.lockFindByTitle.RUnlock()
	return calls
}

func (mock *bookRepoMock) IsReservable(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.IsReservableFunc == nil {
		panic("bookRepoMock.IsReservableFunc: method is nil but bookRepo.IsReservable was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIsReservable.Lock()
	mock.calls.IsReservable = append(mock.calls.IsReservable, callInfo)
	mock.lockIsReservable.Unlock()
	return mock.IsReservableFunc(ctx, id)
}

func (mock *bookRepoMock) IsReservableCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIsReservable.RLock()
	calls := mock.calls.IsReservable
	mock.lockIsReservable.RUnlock()
	return calls
}

func (mock *bookRepoMock) AvailabilityCounts(ctx context.Context) (int, int, error) {
	if mock.AvailabilityCountsFunc == nil {
		panic("bookRepoMock.AvailabilityCountsFunc: method is nil but bookRepo.AvailabilityCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockAvailabilityCounts.Lock()
	mock.calls.AvailabilityCounts = append(mock.calls.AvailabilityCounts, callInfo)
	mock.lockAvailabilityCounts.Unlock()
	return mock.AvailabilityCountsFunc(ctx)
}

func (mock *bookRepoMock) AvailabilityCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockAvailabilityCounts.RLock()
	calls := mock.calls.AvailabilityCounts
	mock.lockAvailabilityCounts.RUnlock()
	return calls
}
