package querylog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var _ queryRepo = &queryRepoMock{}

type queryRepoMock struct {
	CreateFunc    func(ctx context.Context, text string) (*domain.Query, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	ListFunc      func(ctx context.Context, limit int, offset int) ([]domain.Query, error)
	SetAnswerFunc func(ctx context.Context, id uuid.UUID, answer string) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Text string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetAnswer []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Answer string
		}
	}
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockSetAnswer sync.RWMutex
}

func (mock *queryRepoMock) Create(ctx context.Context, text string) (*domain.Query, error) {
	if mock.CreateFunc == nil {
		panic("queryRepoMock.CreateFunc: method is nil but queryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, text)
}

func (mock *queryRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *queryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	if mock.GetByIDFunc == nil {
		panic("queryRepoMock.GetByIDFunc: method is nil but queryRepo.GetByID was just called")
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

func (mock *queryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *queryRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Query, error) {
	if mock.ListFunc == nil {
		panic("queryRepoMock.ListFunc: method is nil but queryRepo.List was just called")
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

func (mock *queryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *queryRepoMock) SetAnswer(ctx context.Context, id uuid.UUID, answer string) error {
	if mock.SetAnswerFunc == nil {
		panic("queryRepoMock.SetAnswerFunc: method is nil but queryRepo.SetAnswer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Answer string
	}{Ctx: ctx, ID: id, Answer: answer}
	mock.lockSetAnswer.Lock()
	mock.calls.SetAnswer = append(mock.calls.SetAnswer, callInfo)
	mock.lockSetAnswer.Unlock()
	return mock.SetAnswerFunc(ctx, id, answer)
}

func (mock *queryRepoMock) SetAnswerCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Answer string
} {
	mock.lockSetAnswer.RLock()
	calls := mock.calls.SetAnswer
	mock.lockSetAnswer.RUnlock()
	return calls
}
