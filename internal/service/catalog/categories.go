package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// CreateCategories creates one or more categories in a single transaction.
func (s *Service) CreateCategories(ctx context.Context, inputs []CreateCategoryInput) ([]domain.Category, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("categories", "at least one category is required")
	}
	if len(inputs) > MaxBatchSize {
		return nil, domain.NewValidationError("categories", fmt.Sprintf("max %d categories per request", MaxBatchSize))
	}

	var errs []domain.FieldError
	for i, in := range inputs {
		errs = append(errs, in.fieldErrors(batchPrefix(len(inputs), i))...)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	created := make([]domain.Category, 0, len(inputs))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i, in := range inputs {
			c, err := s.categories.Create(txCtx, &domain.Category{
				Name:        strings.TrimSpace(in.Name),
				Description: strings.TrimSpace(in.Description),
			})
			if err != nil {
				return fmt.Errorf("create category %d: %w", i, err)
			}
			created = append(created, *c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "categories created", slog.Int("count", len(created)))

	return created, nil
}

// GetCategory returns a category by id.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// UpdateCategory applies a partial update to a category.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, input.ID, domain.CategoryUpdateParams{
		Name:        trimPtr(input.Name),
		Description: trimPtr(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated", slog.String("category_id", c.ID.String()))

	return c, nil
}

// DeleteCategory removes a category. Its books stay in the catalog without a
// category.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))

	return nil
}
