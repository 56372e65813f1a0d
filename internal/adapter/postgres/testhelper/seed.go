package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueISBN returns a 13-character ISBN that does not collide across parallel tests.
func UniqueISBN() string {
	return "978" + uuid.New().String()[:8] + "00"
}

// SeedCategory inserts a category with a unique name derived from prefix.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:          uuid.New(),
		Name:        prefix + " " + uniqueSuffix(),
		Description: "seeded category",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedBook inserts an available book with a unique ISBN and the given title.
// categoryID may be nil.
func SeedBook(t *testing.T, pool *pgxpool.Pool, title string, categoryID *uuid.UUID) domain.Book {
	t.Helper()

	b := domain.Book{
		ID:          uuid.New(),
		Title:       title,
		Author:      "Author " + uniqueSuffix(),
		PublishedOn: time.Date(2001, 3, 15, 0, 0, 0, 0, time.UTC),
		ISBN:        UniqueISBN(),
		Synopsis:    "synopsis of " + title,
		CategoryID:  categoryID,
		Language:    domain.DefaultLanguage,
		Available:   true,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, published_on, isbn, synopsis, category_id, language, available, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.Title, b.Author, b.PublishedOn, b.ISBN, b.Synopsis, b.CategoryID, b.Language, b.Available, b.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return b
}

// SeedReservation inserts a reservation directly, bypassing the engine, and
// sets the book's availability to match the status. Use it to prepare
// states such as overdue or terminal reservations.
func SeedReservation(t *testing.T, pool *pgxpool.Pool, bookID uuid.UUID, status domain.ReservationStatus, createdAt time.Time, loanDays int) domain.Reservation {
	t.Helper()
	ctx := context.Background()

	r := domain.Reservation{
		ID:        uuid.New(),
		BookID:    bookID,
		UserName:  "Reader " + uniqueSuffix(),
		UserEmail: "reader-" + uniqueSuffix() + "@example.com",
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		Status:    status,
	}
	r.DueAt = domain.DueDate(r.CreatedAt, loanDays)
	if status == domain.ReservationCompleted {
		returned := r.DueAt.Add(-time.Hour)
		r.ReturnedAt = &returned
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reservations (id, book_id, user_name, user_email, created_at, due_at, returned_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.BookID, r.UserName, r.UserEmail, r.CreatedAt, r.DueAt, r.ReturnedAt, string(r.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReservation: %v", err)
	}

	if status == domain.ReservationActive {
		if _, err := pool.Exec(ctx, `UPDATE books SET available = false WHERE id = $1`, bookID); err != nil {
			t.Fatalf("testhelper: SeedReservation mark unavailable: %v", err)
		}
	}

	return r
}

// BookAvailable reads books.available for id.
func BookAvailable(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()

	var available bool
	if err := pool.QueryRow(context.Background(), `SELECT available FROM books WHERE id = $1`, id).Scan(&available); err != nil {
		t.Fatalf("testhelper: BookAvailable: %v", err)
	}
	return available
}

// CountActive returns the number of active reservations for a book.
func CountActive(t *testing.T, pool *pgxpool.Pool, bookID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE book_id = $1 AND status = 'active'`, bookID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountActive: %v", err)
	}
	return n
}
