package librarian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// MaxQuestionLength bounds the length of a question.
const MaxQuestionLength = 2000

// Answer interprets a question with the completion service and grounds the
// result in the catalog. Only invalid input is returned as an error: upstream
// failures, timeouts and catalog read errors become a KindError response and
// malformed completion output becomes the fallback info response.
func (s *Service) Answer(ctx context.Context, question string) (*Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.NewValidationError("question", "required")
	}
	if len(question) > MaxQuestionLength {
		return nil, domain.NewValidationError("question", fmt.Sprintf("max %d characters", MaxQuestionLength))
	}

	resp, err := s.answer(ctx, question)
	if err != nil {
		s.log.ErrorContext(ctx, "assistant failed",
			slog.String("error", err.Error()),
			slog.Bool("upstream", errors.Is(err, domain.ErrUpstream)),
		)
		return errorResponse(), nil
	}
	return resp, nil
}

func (s *Service) answer(ctx context.Context, question string) (*Response, error) {
	lc, err := s.loadContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	prompt, err := buildPrompt(question, lc)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p, err := parsePayload(raw)
	if err != nil {
		s.log.WarnContext(ctx, "unparseable completion",
			slog.String("error", err.Error()),
			slog.Int("length", len(raw)),
		)
		return infoResponse(FallbackMessage), nil
	}

	switch Kind(p.Type) {
	case KindSearch:
		return s.groundSearch(ctx, p)
	case KindAvailability:
		return s.groundAvailability(ctx, question, p)
	default:
		answer := strings.TrimSpace(p.Answer)
		if answer == "" {
			answer = FallbackMessage
		}
		return infoResponse(answer), nil
	}
}

// complete calls the completion service bounded by the configured timeout.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.completer == nil {
		return "", fmt.Errorf("no completer configured: %w", domain.ErrUpstream)
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completer.Complete(cctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete: %w: %w", domain.ErrUpstream, err)
	}
	return raw, nil
}

// Ask answers a question and records it with its answer in the query log.
// Query log failures are logged and do not affect the answer.
func (s *Service) Ask(ctx context.Context, question string) (*Response, error) {
	resp, err := s.Answer(ctx, question)
	if err != nil {
		return nil, err
	}
	if s.queries == nil {
		return resp, nil
	}

	q, err := s.queries.Record(ctx, question)
	if err != nil {
		s.log.WarnContext(ctx, "record query", slog.String("error", err.Error()))
		return resp, nil
	}

	answer, err := json.Marshal(resp.summary())
	if err != nil {
		s.log.WarnContext(ctx, "encode answer", slog.String("error", err.Error()))
		return resp, nil
	}
	if err := s.queries.SetAnswer(ctx, q.ID, string(answer)); err != nil {
		s.log.WarnContext(ctx, "store answer",
			slog.String("query_id", q.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return resp, nil
}

// answerSummary is the form in which an answer is kept in the query log.
type answerSummary struct {
	Kind        Kind     `json:"type"`
	Explanation string   `json:"explanation"`
	Books       []string `json:"books,omitempty"`
	Available   []string `json:"available,omitempty"`
	Unavailable []string `json:"unavailable,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (r *Response) summary() answerSummary {
	return answerSummary{
		Kind:        r.Kind,
		Explanation: r.Explanation,
		Books:       titles(r.Books),
		Available:   titles(r.Available),
		Unavailable: titles(r.Unavailable),
		Suggestions: r.Suggestions,
	}
}

func titles(books []domain.Book) []string {
	if len(books) == 0 {
		return nil
	}
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}
