// Package book implements the book repository using PostgreSQL.
// Reads join the category name; availability writes are conditional
// updates used by the reservation engine.
package book

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type bookRow struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Author       string     `db:"author"`
	PublishedOn  time.Time  `db:"published_on"`
	ISBN         string     `db:"isbn"`
	Synopsis     string     `db:"synopsis"`
	CategoryID   *uuid.UUID `db:"category_id"`
	CategoryName *string    `db:"category_name"`
	CoverURL     *string    `db:"cover_url"`
	Pages        int        `db:"pages"`
	Language     string     `db:"language"`
	Available    bool       `db:"available"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (r bookRow) toDomain() domain.Book {
	return domain.Book{
		ID:           r.ID,
		Title:        r.Title,
		Author:       r.Author,
		PublishedOn:  r.PublishedOn,
		ISBN:         r.ISBN,
		Synopsis:     r.Synopsis,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		CoverURL:     r.CoverURL,
		Pages:        r.Pages,
		Language:     r.Language,
		Available:    r.Available,
		CreatedAt:    r.CreatedAt,
	}
}

var bookColumns = []string{
	"b.id", "b.title", "b.author", "b.published_on", "b.isbn", "b.synopsis",
	"b.category_id", "c.name AS category_name", "b.cover_url", "b.pages",
	"b.language", "b.available", "b.created_at",
}

func selectBooks() sq.SelectBuilder {
	return postgres.Builder().
		Select(bookColumns...).
		From("books b").
		LeftJoin("categories c ON c.id = b.category_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book by primary key.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	query, args, err := selectBooks().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get book query: %w", err)
	}

	var row bookRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	b := row.toDomain()
	return &b, nil
}

// List returns books matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	b := applyFilter(selectBooks(), filter).OrderBy("b.created_at DESC", "b.id")
	b = postgres.Page(b, filter.Limit, filter.Offset)

	return r.queryBooks(ctx, b, "list books")
}

// Count returns the number of books matching the filter (limit/offset ignored).
func (r *Repo) Count(ctx context.Context, filter domain.BookFilter) (int, error) {
	b := applyFilter(
		postgres.Builder().Select("count(*)").From("books b").LeftJoin("categories c ON c.id = b.category_id"),
		filter,
	)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count books query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// FindByTitle returns books whose title equals (exact) or contains title,
// compared case-insensitively, ordered by title then id. A non-nil available
// narrows the result to books with that availability.
func (r *Repo) FindByTitle(ctx context.Context, title string, exact bool, available *bool) ([]domain.Book, error) {
	b := selectBooks()
	if exact {
		b = b.Where("lower(b.title) = lower(?)", title)
	} else {
		b = b.Where(sq.ILike{"b.title": postgres.ContainsPattern(title)})
	}
	if available != nil {
		b = b.Where(sq.Eq{"b.available": *available})
	}
	b = b.OrderBy("b.title", "b.id")

	return r.queryBooks(ctx, b, "find books by title")
}

// AvailabilityCounts returns the total number of books and how many are available.
func (r *Repo) AvailabilityCounts(ctx context.Context) (total, available int, err error) {
	const q = `SELECT count(*), count(*) FILTER (WHERE available) FROM books`

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, q).Scan(&total, &available); err != nil {
		return 0, 0, fmt.Errorf("count books by availability: %w", err)
	}
	return total, available, nil
}

func (r *Repo) queryBooks(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.Book, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []bookRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	books := make([]domain.Book, len(rows))
	for i, row := range rows {
		books[i] = row.toDomain()
	}
	return books, nil
}

func applyFilter(b sq.SelectBuilder, f domain.BookFilter) sq.SelectBuilder {
	if f.Search != nil && *f.Search != "" {
		p := postgres.ContainsPattern(*f.Search)
		b = b.Where(sq.Or{
			sq.ILike{"b.title": p},
			sq.ILike{"b.author": p},
			sq.ILike{"b.synopsis": p},
		})
	}
	if f.Category != nil && *f.Category != "" {
		b = b.Where(sq.ILike{"c.name": postgres.ContainsPattern(*f.Category)})
	}
	if f.Available != nil {
		b = b.Where(sq.Eq{"b.available": *f.Available})
	}
	if f.PublishedFrom != nil {
		b = b.Where(sq.GtOrEq{"b.published_on": *f.PublishedFrom})
	}
	if f.PublishedTo != nil {
		b = b.Where(sq.LtOrEq{"b.published_on": *f.PublishedTo})
	}
	return b
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book and returns the persisted row. The available flag is
// always stored as true. Returns domain.ErrAlreadyExists on a duplicate ISBN
// and domain.ErrNotFound if the category does not exist.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	language := b.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	query, args, err := postgres.Builder().
		Insert("books").
		Columns("id", "title", "author", "published_on", "isbn", "synopsis",
			"category_id", "cover_url", "pages", "language", "available").
		Values(id, b.Title, b.Author, b.PublishedOn, b.ISBN, b.Synopsis,
			b.CategoryID, b.CoverURL, b.Pages, language, true).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert book query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial update. Fields left nil are unchanged; the
// available flag is never touched here.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.BookUpdateParams) (*domain.Book, error) {
	set := map[string]any{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Author != nil {
		set["author"] = *p.Author
	}
	if p.PublishedOn != nil {
		set["published_on"] = *p.PublishedOn
	}
	if p.ISBN != nil {
		set["isbn"] = *p.ISBN
	}
	if p.Synopsis != nil {
		set["synopsis"] = *p.Synopsis
	}
	switch {
	case p.ClearCategory:
		set["category_id"] = nil
	case p.CategoryID != nil:
		set["category_id"] = *p.CategoryID
	}
	if p.CoverURL != nil {
		if *p.CoverURL == "" {
			set["cover_url"] = nil
		} else {
			set["cover_url"] = *p.CoverURL
		}
	}
	if p.Pages != nil {
		set["pages"] = *p.Pages
	}
	if p.Language != nil {
		set["language"] = *p.Language
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder().Update("books").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update book query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a book. Its reservations are removed by ON DELETE CASCADE.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Availability (reservation engine only)
// ---------------------------------------------------------------------------

const markUnavailableSQL = `
UPDATE books SET available = false
WHERE id = $1
  AND available
  AND NOT EXISTS (
      SELECT 1 FROM reservations
      WHERE book_id = $1 AND status = 'active'
  )`

const isReservableSQL = `
SELECT b.available AND NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.book_id = b.id AND r.status = 'active'
)
FROM books b
WHERE b.id = $1`

// MarkUnavailable flips available to false only if the book is currently
// available and has no active reservation. It reports whether the row was
// updated; false means the book exists but is not reservable, or does not exist.
func (r *Repo) MarkUnavailable(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markUnavailableSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "book", id)
	}
	return tag.RowsAffected() == 1, nil
}

// Release sets available back to true.
func (r *Repo) Release(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `UPDATE books SET available = true WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	return nil
}

// ReleaseMany sets available back to true for every id.
func (r *Repo) ReleaseMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `UPDATE books SET available = true WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("release books: %w", err)
	}
	return nil
}

// IsReservable reports whether the book is available and has no active
// reservation. Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) IsReservable(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, isReservableSQL, id).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "book", id)
	}
	return ok, nil
}

// Exists reports whether a book with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("book exists: %w", err)
	}
	return ok, nil
}
