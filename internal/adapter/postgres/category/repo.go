// Package category implements the category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const categoryColumns = `id, name, description`

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c domain.Category
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}

// List returns all categories ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &categories,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListNames returns category names ordered alphabetically.
func (r *Repo) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names,
		`SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	return names, nil
}

// Create inserts a category. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var created domain.Category
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3) RETURNING `+categoryColumns,
		id, c.Name, c.Description)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &created, nil
}

// Update applies a partial update. Returns domain.ErrNotFound if the category
// does not exist and domain.ErrAlreadyExists if the new name is taken.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.CategoryUpdateParams) (*domain.Category, error) {
	set := map[string]any{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder().
		Update("categories").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + categoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category query: %w", err)
	}

	var updated domain.Category
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &updated, nil
}

// Delete removes a category; its books are detached (ON DELETE SET NULL).
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
