package librarian

import (
	"context"
	"sync"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListNamesFunc func(ctx context.Context) ([]string, error)

	calls struct {
		ListNames []struct {
			Ctx context.Context
		}
	}
	lockListNames sync.RWMutex
}

func (mock *categoryRepoMock) ListNames(ctx context.Context) ([]string, error) {
	if mock.ListNamesFunc == nil {
		panic("categoryRepoMock.ListNamesFunc: method is nil but categoryRepo.ListNames was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListNames.Lock()
	mock.calls.ListNames = append(mock.calls.ListNames, callInfo)
	mock.lockListNames.Unlock()
	return mock.ListNamesFunc(ctx)
}

func (mock *categoryRepoMock) ListNamesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListNames.RLock()
	calls := mock.calls.ListNames
	mock.lockListNames.RUnlock()
	return calls
}
