package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// CreateBooks creates one or more books in a single transaction. Every input
// is validated up front and all field errors are reported together; nothing
// is written when any input is invalid or any insert fails.
func (s *Service) CreateBooks(ctx context.Context, inputs []CreateBookInput) ([]domain.Book, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("books", "at least one book is required")
	}
	if len(inputs) > MaxBatchSize {
		return nil, domain.NewValidationError("books", fmt.Sprintf("max %d books per request", MaxBatchSize))
	}

	var errs []domain.FieldError
	for i, in := range inputs {
		errs = append(errs, in.fieldErrors(batchPrefix(len(inputs), i))...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	created := make([]domain.Book, 0, len(inputs))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i, in := range inputs {
			b, err := s.books.Create(txCtx, in.toDomain())
			if err != nil {
				return fmt.Errorf("create book %d: %w", i, err)
			}
			created = append(created, *b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "books created", slog.Int("count", len(created)))

	return created, nil
}

// GetBook returns a book by id.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// ListBooks returns a page of books, newest first, and the total number of
// matches.
func (s *Service) ListBooks(ctx context.Context, input ListBooksInput) (*BookPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()

	books, err := s.books.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	total, err := s.books.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}

	return &BookPage{Books: books, Total: total}, nil
}

// UpdateBook applies a partial update to a book.
func (s *Service) UpdateBook(ctx context.Context, input UpdateBookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.books.Update(ctx, input.ID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.log.InfoContext(ctx, "book updated", slog.String("book_id", b.ID.String()))

	return b, nil
}

// DeleteBook removes a book together with its reservations.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", id.String()))

	return nil
}
