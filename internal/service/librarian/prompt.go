package librarian

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// libraryContext is the bounded catalog summary sent with every question.
type libraryContext struct {
	Categories   []string           `json:"categories"`
	Books        []bookSummary      `json:"books"`
	Reservations reservationSummary `json:"reservations"`
	MostReserved []string           `json:"most_reserved"`
}

type bookSummary struct {
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Category   string     `json:"category"`
	Available  bool       `json:"available"`
	Reserved   bool       `json:"reserved"`
	ReservedTo *time.Time `json:"reserved_until,omitempty"`
	AddedOn    string     `json:"added_on"`
}

type reservationSummary struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Expired   int `json:"expired"`
}

// loadContext gathers the prompt context concurrently.
func (s *Service) loadContext(ctx context.Context) (*libraryContext, error) {
	var (
		lc     libraryContext
		books  []domain.Book
		active []domain.Reservation
		counts domain.ReservationCounts
		top    []domain.BookReservationCount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		names, err := s.categories.ListNames(gctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		lc.Categories = names
		return nil
	})

	g.Go(func() error {
		var err error
		books, err = s.books.List(gctx, domain.BookFilter{Limit: s.contextBooks})
		if err != nil {
			return fmt.Errorf("list books: %w", err)
		}
		ids := make([]uuid.UUID, len(books))
		for i, b := range books {
			ids[i] = b.ID
		}
		active, err = s.reservations.ActiveByBooks(gctx, ids)
		if err != nil {
			return fmt.Errorf("active reservations: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		counts, err = s.reservations.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		top, err = s.reservations.TopReserved(gctx, domain.TopBooksLimit)
		if err != nil {
			return fmt.Errorf("top reserved: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	due := make(map[uuid.UUID]time.Time, len(active))
	for _, r := range active {
		due[r.BookID] = r.DueAt
	}

	lc.Books = make([]bookSummary, len(books))
	for i, b := range books {
		sum := bookSummary{
			Title:     b.Title,
			Author:    b.Author,
			Category:  "Uncategorized",
			Available: b.Available,
			AddedOn:   b.CreatedAt.Format(time.DateOnly),
		}
		if b.CategoryName != nil {
			sum.Category = *b.CategoryName
		}
		if d, ok := due[b.ID]; ok {
			sum.Reserved = true
			sum.ReservedTo = &d
		}
		lc.Books[i] = sum
	}

	lc.Reservations = reservationSummary{
		Active:    counts[domain.ReservationActive],
		Completed: counts[domain.ReservationCompleted],
		Cancelled: counts[domain.ReservationCancelled],
		Expired:   counts[domain.ReservationExpired],
	}

	lc.MostReserved = make([]string, len(top))
	for i, t := range top {
		lc.MostReserved[i] = t.Title
	}
	if lc.Categories == nil {
		lc.Categories = []string{}
	}

	return &lc, nil
}

// buildPrompt creates the completion prompt for one question.
func buildPrompt(question string, lc *libraryContext) (string, error) {
	contextJSON, err := json.MarshalIndent(lc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}

	return fmt.Sprintf(`You are the assistant of a digital library. You help readers find books and answer questions about the library.

Library data:
%s

The reader's question is: %q

If the question is a search for books, answer with:
{"type": "search", "recommendations": ["<title>", "<title>"], "explanation": "<friendly explanation>", "suggestions": ["<follow-up suggestion>"]}

If the question is about which books are available or reserved, answer with:
{"type": "availability", "available": ["<title>"], "unavailable": ["<title>"], "answer": "<short summary>"}

If the question is a general question about the library or how to use it, answer with:
{"type": "info", "answer": "<detailed answer>"}

Rules:
- Only recommend titles that appear in the library data
- Answer in the language of the question
- Output ONLY the JSON object, no markdown, no backticks, no extra text`, string(contextJSON), question), nil
}
