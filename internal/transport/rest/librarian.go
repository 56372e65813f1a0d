package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/librarian"
)

// librarianService defines the minimal interface needed by LibrarianHandler.
type librarianService interface {
	Ask(ctx context.Context, question string) (*librarian.Response, error)
	SearchBooks(ctx context.Context, text string) (*librarian.SearchResult, error)
	Suggestions(ctx context.Context, bookID uuid.UUID) (*librarian.Response, error)
	Availability(ctx context.Context, bookID uuid.UUID) (*librarian.Availability, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

// kindObserver counts assistant responses by kind.
type kindObserver interface {
	ObserveAssistant(kind string)
}

type noopObserver struct{}

func (noopObserver) ObserveAssistant(string) {}

// LibrarianHandler serves the assistant, availability and statistics endpoints.
type LibrarianHandler struct {
	svc     librarianService
	metrics kindObserver
	log     *slog.Logger
}

// NewLibrarianHandler creates a LibrarianHandler. metrics may be nil.
func NewLibrarianHandler(svc librarianService, metrics kindObserver, logger *slog.Logger) *LibrarianHandler {
	if metrics == nil {
		metrics = noopObserver{}
	}
	return &LibrarianHandler{svc: svc, metrics: metrics, log: logger.With("handler", "librarian")}
}

type questionRequest struct {
	Question string `json:"question"`
}

// Ask handles POST /librarian/ask. The question is recorded in the query log
// together with its answer.
func (h *LibrarianHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := h.svc.Ask(r.Context(), req.Question)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.ObserveAssistant(string(resp.Kind))
	writeJSON(w, http.StatusOK, toAssistantResponse(resp))
}

// Search handles POST /librarian/search.
func (h *LibrarianHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.SearchBooks(r.Context(), req.Question)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.ObserveAssistant(string(librarian.KindSearch))
	writeJSON(w, http.StatusOK, toSearchResponse(result))
}

// Suggestions handles GET /librarian/suggestions/{bookID}.
func (h *LibrarianHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathUUID(r, "bookID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := h.svc.Suggestions(r.Context(), bookID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.metrics.ObserveAssistant(string(resp.Kind))
	writeJSON(w, http.StatusOK, toAssistantResponse(resp))
}

// Availability handles GET /books/{id}/availability.
func (h *LibrarianHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Availability(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAvailabilityResponse(a))
}

// Statistics handles GET /statistics.
func (h *LibrarianHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatisticsResponse(*stats))
}
