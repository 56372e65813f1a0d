// Package catalog manages books and categories.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	Count(ctx context.Context, filter domain.BookFilter) (int, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, p domain.CategoryUpdateParams) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	// MaxBatchSize bounds how many books or categories one create call accepts.
	MaxBatchSize = 100
)

// Service provides catalog operations.
type Service struct {
	books      bookRepo
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	categories categoryRepo,
	tx txManager,
) *Service {
	return &Service{
		books:      books,
		categories: categories,
		tx:         tx,
		log:        log.With("service", "catalog"),
	}
}

// BookPage is one page of a book listing together with the total match count.
type BookPage struct {
	Books []domain.Book
	Total int
}
