package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ bookRepo = &bookRepoMock{}

type bookRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListFunc    func(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	CountFunc   func(ctx context.Context, filter domain.BookFilter) (int, error)
	CreateFunc  func(ctx context.Context, b *domain.Book) (*domain.Book, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.BookFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.BookFilter
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Book
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.BookUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *bookRepoMock) Count(ctx context.Context, filter domain.BookFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("bookRepoMock.CountFunc: method is nil but bookRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BookFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *bookRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.BookFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *bookRepoMock) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookRepoMock.CreateFunc: method is nil but bookRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Book
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Book
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookRepoMock.UpdateFunc: method is nil but bookRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.BookUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *bookRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.BookUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *bookRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("bookRepoMock.DeleteFunc: method is nil but bookRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *bookRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
