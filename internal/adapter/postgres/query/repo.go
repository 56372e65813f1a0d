// Package query implements the append-only query log repository.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides query log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new query log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const queryColumns = `id, text, answer, created_at`

// Create appends a query with an empty answer.
func (r *Repo) Create(ctx context.Context, text string) (*domain.Query, error) {
	id := uuid.New()

	var q domain.Query
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &q,
		`INSERT INTO queries (id, text) VALUES ($1, $2) RETURNING `+queryColumns, id, text)
	if err != nil {
		return nil, postgres.MapError(err, "query", id)
	}
	return &q, nil
}

// GetByID returns a logged query. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	var q domain.Query
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &q,
		`SELECT `+queryColumns+` FROM queries WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "query", id)
	}
	return &q, nil
}

// List returns logged queries newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Query, error) {
	sql, args, err := postgres.Page(
		postgres.Builder().Select(queryColumns).From("queries").OrderBy("created_at DESC", "id"),
		limit, offset,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list queries query: %w", err)
	}

	queries := []domain.Query{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &queries, sql, args...); err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	return queries, nil
}

// SetAnswer records the answer of a query. The answer is written once:
// a second attempt returns domain.ErrConflict.
// Returns domain.ErrNotFound if the query does not exist.
func (r *Repo) SetAnswer(ctx context.Context, id uuid.UUID, answer string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE queries SET answer = $2 WHERE id = $1 AND answer = ''`, id, answer)
	if err != nil {
		return postgres.MapError(err, "query", id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM queries WHERE id = $1)`, id).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("query %s exists: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("query %s already answered: %w", id, domain.ErrConflict)
}
