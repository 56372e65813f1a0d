package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/librarian"
)

var _ librarianService = &librarianServiceMock{}

type librarianServiceMock struct {
	AskFunc          func(ctx context.Context, question string) (*librarian.Response, error)
	SearchBooksFunc  func(ctx context.Context, text string) (*librarian.SearchResult, error)
	SuggestionsFunc  func(ctx context.Context, bookID uuid.UUID) (*librarian.Response, error)
	AvailabilityFunc func(ctx context.Context, bookID uuid.UUID) (*librarian.Availability, error)
	StatisticsFunc   func(ctx context.Context) (*domain.Statistics, error)

	calls struct {
		Ask []struct {
			Ctx      context.Context
			Question string
		}
		SearchBooks []struct {
			Ctx  context.Context
			Text string
		}
		Suggestions []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		Availability []struct {
			Ctx    context.Context
			BookID uuid.UUID
		}
		Statistics []struct {
			Ctx context.Context
		}
	}
	lockAsk          sync.RWMutex
	lockSearchBooks  sync.RWMutex
	lockSuggestions  sync.RWMutex
	lockAvailability sync.RWMutex
	lockStatistics   sync.RWMutex
}

func (mock *librarianServiceMock) Ask(ctx context.Context, question string) (*librarian.Response, error) {
	if mock.AskFunc == nil {
		panic("librarianServiceMock.AskFunc: method is nil but librarianService.Ask was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Question string
	}{Ctx: ctx, Question: question}
	mock.lockAsk.Lock()
	mock.calls.Ask = append(mock.calls.Ask, callInfo)
	mock.lockAsk.Unlock()
	return mock.AskFunc(ctx, question)
}

func (mock *librarianServiceMock) AskCalls() []struct {
	Ctx      context.Context
	Question string
} {
	mock.lockAsk.RLock()
	calls := mock.calls.Ask
	mock.lockAsk.RUnlock()
	return calls
}

func (mock *librarianServiceMock) SearchBooks(ctx context.Context, text string) (*librarian.SearchResult, error) {
	if mock.SearchBooksFunc == nil {
		panic("librarianServiceMock.SearchBooksFunc: method is nil but librarianService.SearchBooks was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockSearchBooks.Lock()
	mock.calls.SearchBooks = append(mock.calls.SearchBooks, callInfo)
	mock.lockSearchBooks.Unlock()
	return mock.SearchBooksFunc(ctx, text)
}

func (mock *librarianServiceMock) SearchBooksCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockSearchBooks.RLock()
	calls := mock.calls.SearchBooks
	mock.lockSearchBooks.RUnlock()
	return calls
}

func (mock *librarianServiceMock) Suggestions(ctx context.Context, bookID uuid.UUID) (*librarian.Response, error) {
	if mock.SuggestionsFunc == nil {
		panic("librarianServiceMock.SuggestionsFunc: method is nil but librarianService.Suggestions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockSuggestions.Lock()
	mock.calls.Suggestions = append(mock.calls.Suggestions, callInfo)
	mock.lockSuggestions.Unlock()
	return mock.SuggestionsFunc(ctx, bookID)
}

func (mock *librarianServiceMock) SuggestionsCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockSuggestions.RLock()
	calls := mock.calls.Suggestions
	mock.lockSuggestions.RUnlock()
	return calls
}

func (mock *librarianServiceMock) Availability(ctx context.Context, bookID uuid.UUID) (*librarian.Availability, error) {
	if mock.AvailabilityFunc == nil {
		panic("librarianServiceMock.AvailabilityFunc: method is nil but librarianService.Availability was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID uuid.UUID
	}{Ctx: ctx, BookID: bookID}
	mock.lockAvailability.Lock()
	mock.calls.Availability = append(mock.calls.Availability, callInfo)
	mock.lockAvailability.Unlock()
	return mock.AvailabilityFunc(ctx, bookID)
}

func (mock *librarianServiceMock) AvailabilityCalls() []struct {
	Ctx    context.Context
	BookID uuid.UUID
} {
	mock.lockAvailability.RLock()
	calls := mock.calls.Availability
	mock.lockAvailability.RUnlock()
	return calls
}

func (mock *librarianServiceMock) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if mock.StatisticsFunc == nil {
		panic("librarianServiceMock.StatisticsFunc: method is nil but librarianService.Statistics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStatistics.Lock()
	mock.calls.Statistics = append(mock.calls.Statistics, callInfo)
	mock.lockStatistics.Unlock()
	return mock.StatisticsFunc(ctx)
}

func (mock *librarianServiceMock) StatisticsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStatistics.RLock()
	calls := mock.calls.Statistics
	mock.lockStatistics.RUnlock()
	return calls
}
