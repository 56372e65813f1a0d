package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ queryLogService = &queryLogServiceMock{}

type queryLogServiceMock struct {
	GetFunc  func(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	ListFunc func(ctx context.Context, limit int, offset int) ([]domain.Query, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockGet  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *queryLogServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	if mock.GetFunc == nil {
		panic("queryLogServiceMock.GetFunc: method is nil but queryLogService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *queryLogServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *queryLogServiceMock) List(ctx context.Context, limit int, offset int) ([]domain.Query, error) {
	if mock.ListFunc == nil {
		panic("queryLogServiceMock.ListFunc: method is nil but queryLogService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *queryLogServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
