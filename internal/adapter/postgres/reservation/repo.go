// Package reservation implements the reservation repository using PostgreSQL.
// State changes are single guarded statements (status = 'active') so that
// concurrent transitions of the same reservation serialize on the row lock
// and only one of them takes effect.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// ActiveIndex is the partial unique index allowing one active reservation per book.
const ActiveIndex = "ux_reservations_active_book"

// Repo provides reservation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reservation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reservationRow struct {
	ID         uuid.UUID  `db:"id"`
	BookID     uuid.UUID  `db:"book_id"`
	BookTitle  string     `db:"book_title"`
	UserName   string     `db:"user_name"`
	UserEmail  string     `db:"user_email"`
	CreatedAt  time.Time  `db:"created_at"`
	DueAt      time.Time  `db:"due_at"`
	ReturnedAt *time.Time `db:"returned_at"`
	Status     string     `db:"status"`
	Notes      string     `db:"notes"`
}

func (r reservationRow) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:         r.ID,
		BookID:     r.BookID,
		BookTitle:  r.BookTitle,
		UserName:   r.UserName,
		UserEmail:  r.UserEmail,
		CreatedAt:  r.CreatedAt,
		DueAt:      r.DueAt,
		ReturnedAt: r.ReturnedAt,
		Status:     domain.ReservationStatus(r.Status),
		Notes:      r.Notes,
	}
}

func selectReservations() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"r.id", "r.book_id", "b.title AS book_title", "r.user_name", "r.user_email",
			"r.created_at", "r.due_at", "r.returned_at", "r.status", "r.notes",
		).
		From("reservations r").
		Join("books b ON b.id = r.book_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a reservation by primary key.
// Returns domain.ErrNotFound if the reservation does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query, args, err := selectReservations().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query: %w", err)
	}

	var row reservationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "reservation", id)
	}

	res := row.toDomain()
	return &res, nil
}

// List returns reservations matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	b := selectReservations()
	if f.BookID != nil {
		b = b.Where(sq.Eq{"r.book_id": *f.BookID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"r.status": string(*f.Status)})
	}
	if f.Email != nil && *f.Email != "" {
		b = b.Where("lower(r.user_email) = lower(?)", *f.Email)
	}
	b = postgres.Page(b.OrderBy("r.created_at DESC", "r.id"), f.Limit, f.Offset)

	return r.query(ctx, b, "list reservations")
}

// ActiveByBook returns the active reservation of a book.
// Returns domain.ErrNotFound if the book has none.
func (r *Repo) ActiveByBook(ctx context.Context, bookID uuid.UUID) (*domain.Reservation, error) {
	query, args, err := selectReservations().
		Where(sq.Eq{"r.book_id": bookID, "r.status": string(domain.ReservationActive)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active reservation query: %w", err)
	}

	var row reservationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "active reservation of book", bookID)
	}

	res := row.toDomain()
	return &res, nil
}

// ActiveByBooks returns the active reservations for the given books.
func (r *Repo) ActiveByBooks(ctx context.Context, bookIDs []uuid.UUID) ([]domain.Reservation, error) {
	if len(bookIDs) == 0 {
		return []domain.Reservation{}, nil
	}

	b := selectReservations().
		Where(sq.Eq{"r.book_id": bookIDs, "r.status": string(domain.ReservationActive)}).
		OrderBy("r.due_at")

	return r.query(ctx, b, "list active reservations by books")
}

// CountByStatus returns how many reservations exist in each status.
// Statuses without reservations are absent from the map.
func (r *Repo) CountByStatus(ctx context.Context) (domain.ReservationCounts, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx,
		`SELECT status, count(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count reservations by status: %w", err)
	}
	defer rows.Close()

	counts := domain.ReservationCounts{}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan reservation count: %w", err)
		}
		counts[domain.ReservationStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count reservations by status: %w", err)
	}

	return counts, nil
}

const topReservedSQL = `
SELECT b.id AS book_id, b.title, count(r.id) AS reservation_count
FROM reservations r
JOIN books b ON b.id = r.book_id
GROUP BY b.id, b.title
ORDER BY reservation_count DESC, b.title, b.id
LIMIT $1`

// TopReserved returns the most reserved books, highest count first,
// ties broken by title then id.
func (r *Repo) TopReserved(ctx context.Context, limit int) ([]domain.BookReservationCount, error) {
	top := []domain.BookReservationCount{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &top, topReservedSQL, limit); err != nil {
		return nil, fmt.Errorf("top reserved books: %w", err)
	}
	return top, nil
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.Reservation, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []reservationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Reservation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO reservations (id, book_id, user_name, user_email, created_at, due_at, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, 'active', $7)`

// Insert stores a new active reservation. A second active reservation for the
// same book is reported as domain.ErrBookUnavailable; an unknown book as
// domain.ErrNotFound.
func (r *Repo) Insert(ctx context.Context, res *domain.Reservation) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		res.ID, res.BookID, res.UserName, res.UserEmail, res.CreatedAt, res.DueAt, res.Notes)
	if err != nil {
		if postgres.IsConstraintViolation(err, ActiveIndex) {
			return fmt.Errorf("book %s: %w", res.BookID, domain.ErrBookUnavailable)
		}
		return postgres.MapError(err, "reservation", res.ID)
	}
	return nil
}

const transitionSQL = `
UPDATE reservations
SET status = $2, returned_at = $3
WHERE id = $1 AND status = 'active'
RETURNING book_id`

// Transition moves an active reservation to a terminal status and returns
// its book id. ok is false when the reservation exists but is not active.
// Returns domain.ErrNotFound if the reservation does not exist.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, to domain.ReservationStatus, returnedAt *time.Time) (bookID uuid.UUID, ok bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err = q.QueryRow(ctx, transitionSQL, id, string(to), returnedAt).Scan(&bookID)
	if err == nil {
		return bookID, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, postgres.MapError(err, "reservation", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists); err != nil {
		return uuid.Nil, false, fmt.Errorf("reservation %s exists: %w", id, err)
	}
	if !exists {
		return uuid.Nil, false, fmt.Errorf("reservation %s: %w", id, domain.ErrNotFound)
	}
	return uuid.Nil, false, nil
}

const expireSQL = `
UPDATE reservations r
SET status = 'expired'
FROM books b
WHERE b.id = r.book_id AND r.status = 'active' AND r.due_at < $1
RETURNING r.id, r.book_id, b.title AS book_title, r.user_name, r.user_email,
          r.created_at, r.due_at, r.returned_at, r.status, r.notes`

// ExpireOverdue moves every active reservation with due_at before now to
// expired in one statement and returns the expired reservations.
func (r *Repo) ExpireOverdue(ctx context.Context, now time.Time) ([]domain.Reservation, error) {
	var rows []reservationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, expireSQL, now); err != nil {
		return nil, fmt.Errorf("expire overdue reservations: %w", err)
	}

	out := make([]domain.Reservation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Delete removes a reservation and returns it as it was before deletion.
// Returns domain.ErrNotFound if the reservation does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	var row reservationRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, `
DELETE FROM reservations r
USING books b
WHERE r.id = $1 AND b.id = r.book_id
RETURNING r.id, r.book_id, b.title AS book_title, r.user_name, r.user_email,
          r.created_at, r.due_at, r.returned_at, r.status, r.notes`, id)
	if err != nil {
		return nil, postgres.MapError(err, "reservation", id)
	}

	res := row.toDomain()
	return &res, nil
}
