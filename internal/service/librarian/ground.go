package librarian

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// groundSearch resolves each recommended title by case-insensitive substring
// match. All matches of every title are kept, in order, without duplicates.
func (s *Service) groundSearch(ctx context.Context, p *payload) (*Response, error) {
	recommended := cleanTitles(p.Recommendations)

	seen := make(map[uuid.UUID]struct{})
	books := []domain.Book{}
	for _, title := range recommended {
		matches, err := s.books.FindByTitle(ctx, title, false, nil)
		if err != nil {
			return nil, fmt.Errorf("find %q: %w", title, err)
		}
		books = appendUnique(books, seen, matches)
	}

	explanation := strings.TrimSpace(p.Explanation)
	if explanation == "" && len(books) == 0 {
		explanation = NoBooksMessage
	}

	suggestions := cleanTitles(p.Suggestions)

	return &Response{
		Kind:        KindSearch,
		Explanation: explanation,
		Suggestions: suggestions,
		Recommended: recommended,
		Books:       books,
	}, nil
}

// groundAvailability resolves the claimed available and unavailable titles.
// When the payload carries neither list the question itself decides which
// availability-filtered set of books to return.
func (s *Service) groundAvailability(ctx context.Context, question string, p *payload) (*Response, error) {
	resp := &Response{
		Kind:        KindAvailability,
		Explanation: strings.TrimSpace(p.Answer),
		Available:   []domain.Book{},
		Unavailable: []domain.Book{},
	}

	if p.Available == nil && p.Unavailable == nil {
		intent := ClassifyAvailability(question).OrAvailable()
		flag := intent == IntentAvailable
		books, err := s.books.List(ctx, domain.BookFilter{Available: &flag, Limit: maxGroundedBooks})
		if err != nil {
			return nil, fmt.Errorf("list books by availability: %w", err)
		}
		if flag {
			resp.Available = books
		} else {
			resp.Unavailable = books
		}
		return resp, nil
	}

	var err error
	if p.Available != nil {
		if resp.Available, err = s.resolveTitles(ctx, *p.Available, true); err != nil {
			return nil, err
		}
	}
	if p.Unavailable != nil {
		if resp.Unavailable, err = s.resolveTitles(ctx, *p.Unavailable, false); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// resolveTitles maps titles to books whose availability equals the claimed
// flag: exact case-insensitive matches first, substring matches otherwise.
func (s *Service) resolveTitles(ctx context.Context, titles []string, available bool) ([]domain.Book, error) {
	seen := make(map[uuid.UUID]struct{})
	out := []domain.Book{}
	for _, title := range cleanTitles(titles) {
		matches, err := s.books.FindByTitle(ctx, title, true, &available)
		if err != nil {
			return nil, fmt.Errorf("find %q: %w", title, err)
		}
		if len(matches) == 0 {
			matches, err = s.books.FindByTitle(ctx, title, false, &available)
			if err != nil {
				return nil, fmt.Errorf("find %q: %w", title, err)
			}
		}
		out = appendUnique(out, seen, matches)
	}
	return out, nil
}

func appendUnique(dst []domain.Book, seen map[uuid.UUID]struct{}, books []domain.Book) []domain.Book {
	for _, b := range books {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		dst = append(dst, b)
	}
	return dst
}
