// Package querylog records questions asked to the librarian and their answers.
package querylog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type queryRepo interface {
	Create(ctx context.Context, text string) (*domain.Query, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	List(ctx context.Context, limit, offset int) ([]domain.Query, error)
	SetAnswer(ctx context.Context, id uuid.UUID, answer string) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
	MaxTextLength   = 2000
)

// Service provides query log operations.
type Service struct {
	queries queryRepo
	log     *slog.Logger
}

// NewService creates a new query log service.
func NewService(log *slog.Logger, queries queryRepo) *Service {
	return &Service{
		queries: queries,
		log:     log.With("service", "querylog"),
	}
}

// Record appends a question with an empty answer.
func (s *Service) Record(ctx context.Context, text string) (*domain.Query, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	if len(text) > MaxTextLength {
		return nil, domain.NewValidationError("text", fmt.Sprintf("max %d characters", MaxTextLength))
	}

	q, err := s.queries.Create(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("record query: %w", err)
	}

	s.log.DebugContext(ctx, "query recorded", slog.String("query_id", q.ID.String()))

	return q, nil
}

// SetAnswer stores the answer of a recorded question. The answer can be set
// only once; later attempts fail with domain.ErrConflict.
func (s *Service) SetAnswer(ctx context.Context, id uuid.UUID, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return domain.NewValidationError("answer", "required")
	}

	if err := s.queries.SetAnswer(ctx, id, answer); err != nil {
		return fmt.Errorf("set answer: %w", err)
	}
	return nil
}

// Get returns a recorded question.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Query, error) {
	q, err := s.queries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get query: %w", err)
	}
	return q, nil
}

// List returns recorded questions, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Query, error) {
	var errs []domain.FieldError
	if limit < 0 || limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxPageSize)})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if limit == 0 {
		limit = DefaultPageSize
	}

	list, err := s.queries.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	return list, nil
}
