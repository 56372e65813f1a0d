package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type queryLogService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Query, error)
	List(ctx context.Context, limit, offset int) ([]domain.Query, error)
}

// QueryHandler serves the read side of the query log.
type QueryHandler struct {
	svc queryLogService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryLogService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: logger.With("handler", "query")}
}

// List handles GET /queries, newest first.
func (h *QueryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit, offset := q.integer("limit"), q.integer("offset")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]queryResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toQueryResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /queries/{id}.
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQueryResponse(*item))
}
