package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateBooksFunc      func(ctx context.Context, inputs []catalog.CreateBookInput) ([]domain.Book, error)
	GetBookFunc          func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListBooksFunc        func(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error)
	UpdateBookFunc       func(ctx context.Context, input catalog.UpdateBookInput) (*domain.Book, error)
	DeleteBookFunc       func(ctx context.Context, id uuid.UUID) error
	CreateCategoriesFunc func(ctx context.Context, inputs []catalog.CreateCategoryInput) ([]domain.Category, error)
	GetCategoryFunc      func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListCategoriesFunc   func(ctx context.Context) ([]domain.Category, error)
	UpdateCategoryFunc   func(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateBooks []struct {
			Ctx    context.Context
			Inputs []catalog.CreateBookInput
		}
		GetBook []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListBooks []struct {
			Ctx   context.Context
			Input catalog.ListBooksInput
		}
		UpdateBook []struct {
			Ctx   context.Context
			Input catalog.UpdateBookInput
		}
		DeleteBook []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateCategories []struct {
			Ctx    context.Context
			Inputs []catalog.CreateCategoryInput
		}
		GetCategory []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCategories []struct {
			Ctx context.Context
		}
		UpdateCategory []struct {
			Ctx   context.Context
			Input catalog.UpdateCategoryInput
		}
		DeleteCategory []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateBooks      sync.RWMutex
	lockGetBook          sync.RWMutex
	lockListBooks        sync.RWMutex
	lockUpdateBook       sync.RWMutex
	lockDeleteBook       sync.RWMutex
	lockCreateCategories sync.RWMutex
	lockGetCategory      sync.RWMutex
	lockListCategories   sync.RWMutex
	lockUpdateCategory   sync.RWMutex
	lockDeleteCategory   sync.RWMutex
}

func (mock *catalogServiceMock) CreateBooks(ctx context.Context, inputs []catalog.CreateBookInput) ([]domain.Book, error) {
	if mock.CreateBooksFunc == nil {
		panic("catalogServiceMock.CreateBooksFunc: method is nil but catalogService.CreateBooks was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Inputs []catalog.CreateBookInput
	}{Ctx: ctx, Inputs: inputs}
	mock.lockCreateBooks.Lock()
	mock.calls.CreateBooks = append(mock.calls.CreateBooks, callInfo)
	mock.lockCreateBooks.Unlock()
	return mock.CreateBooksFunc(ctx, inputs)
}

func (mock *catalogServiceMock) CreateBooksCalls() []struct {
	Ctx    context.Context
	Inputs []catalog.CreateBookInput
} {
	mock.lockCreateBooks.RLock()
	calls := mock.calls.CreateBooks
	mock.lockCreateBooks.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetBookFunc == nil {
		panic("catalogServiceMock.GetBookFunc: method is nil but catalogService.GetBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetBook.Lock()
	mock.calls.GetBook = append(mock.calls.GetBook, callInfo)
	mock.lockGetBook.Unlock()
	return mock.GetBookFunc(ctx, id)
}

func (mock *catalogServiceMock) GetBookCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetBook.RLock()
	calls := mock.calls.GetBook
	mock.lockGetBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListBooks(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error) {
	if mock.ListBooksFunc == nil {
		panic("catalogServiceMock.ListBooksFunc: method is nil but catalogService.ListBooks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.ListBooksInput
	}{Ctx: ctx, Input: input}
	mock.lockListBooks.Lock()
	mock.calls.ListBooks = append(mock.calls.ListBooks, callInfo)
	mock.lockListBooks.Unlock()
	return mock.ListBooksFunc(ctx, input)
}

func (mock *catalogServiceMock) ListBooksCalls() []struct {
	Ctx   context.Context
	Input catalog.ListBooksInput
} {
	mock.lockListBooks.RLock()
	calls := mock.calls.ListBooks
	mock.lockListBooks.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateBook(ctx context.Context, input catalog.UpdateBookInput) (*domain.Book, error) {
	if mock.UpdateBookFunc == nil {
		panic("catalogServiceMock.UpdateBookFunc: method is nil but catalogService.UpdateBook was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateBookInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateBook.Lock()
	mock.calls.UpdateBook = append(mock.calls.UpdateBook, callInfo)
	mock.lockUpdateBook.Unlock()
	return mock.UpdateBookFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateBookCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateBookInput
} {
	mock.lockUpdateBook.RLock()
	calls := mock.calls.UpdateBook
	mock.lockUpdateBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteBookFunc == nil {
		panic("catalogServiceMock.DeleteBookFunc: method is nil but catalogService.DeleteBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteBook.Lock()
	mock.calls.DeleteBook = append(mock.calls.DeleteBook, callInfo)
	mock.lockDeleteBook.Unlock()
	return mock.DeleteBookFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteBookCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteBook.RLock()
	calls := mock.calls.DeleteBook
	mock.lockDeleteBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateCategories(ctx context.Context, inputs []catalog.CreateCategoryInput) ([]domain.Category, error) {
	if mock.CreateCategoriesFunc == nil {
		panic("catalogServiceMock.CreateCategoriesFunc: method is nil but catalogService.CreateCategories was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Inputs []catalog.CreateCategoryInput
	}{Ctx: ctx, Inputs: inputs}
	mock.lockCreateCategories.Lock()
	mock.calls.CreateCategories = append(mock.calls.CreateCategories, callInfo)
	mock.lockCreateCategories.Unlock()
	return mock.CreateCategoriesFunc(ctx, inputs)
}

func (mock *catalogServiceMock) CreateCategoriesCalls() []struct {
	Ctx    context.Context
	Inputs []catalog.CreateCategoryInput
} {
	mock.lockCreateCategories.RLock()
	calls := mock.calls.CreateCategories
	mock.lockCreateCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetCategoryFunc == nil {
		panic("catalogServiceMock.GetCategoryFunc: method is nil but catalogService.GetCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetCategory.Lock()
	mock.calls.GetCategory = append(mock.calls.GetCategory, callInfo)
	mock.lockGetCategory.Unlock()
	return mock.GetCategoryFunc(ctx, id)
}

func (mock *catalogServiceMock) GetCategoryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetCategory.RLock()
	calls := mock.calls.GetCategory
	mock.lockGetCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogServiceMock.ListCategoriesFunc: method is nil but catalogService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *catalogServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("catalogServiceMock.UpdateCategoryFunc: method is nil but catalogService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpdateCategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, input)
}

func (mock *catalogServiceMock) UpdateCategoryCalls() []struct {
	Ctx   context.Context
	Input catalog.UpdateCategoryInput
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCategoryFunc == nil {
		panic("catalogServiceMock.DeleteCategoryFunc: method is nil but catalogService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}
