package librarian

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// SearchBooks runs a natural-language book search. Responses of any kind
// other than search yield no books and carry the assistant text (or
// NoBooksMessage) as explanation.
func (s *Service) SearchBooks(ctx context.Context, text string) (*SearchResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("question", "required")
	}

	resp, err := s.Answer(ctx, "Search books about: "+text)
	if err != nil {
		return nil, err
	}

	if resp.Kind == KindSearch {
		return &SearchResult{
			Books:       resp.Books,
			Explanation: resp.Explanation,
			Suggestions: resp.Suggestions,
		}, nil
	}

	explanation := resp.Explanation
	if explanation == "" {
		explanation = NoBooksMessage
	}
	return &SearchResult{
		Books:       []domain.Book{},
		Explanation: explanation,
		Suggestions: []string{},
	}, nil
}

// Suggestions asks the assistant for books similar to an existing one.
// Returns domain.ErrNotFound for an unknown book.
func (s *Service) Suggestions(ctx context.Context, bookID uuid.UUID) (*Response, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	return s.Answer(ctx, fmt.Sprintf("Recommend books similar to %q by %s", book.Title, book.Author))
}
