package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/reservation"
)

// reservationService defines the minimal interface needed by ReservationHandler.
type reservationService interface {
	Reserve(ctx context.Context, input reservation.ReserveInput) (*domain.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, input reservation.ListInput) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SweepExpired(ctx context.Context) (int, error)
}

// ReservationHandler serves the reservation engine endpoints.
type ReservationHandler struct {
	svc reservationService
	log *slog.Logger
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(svc reservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: logger.With("handler", "reservation")}
}

type reserveRequest struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	LoanDays  int    `json:"loan_days"`
	Notes     string `json:"notes"`
}

type sweepResponse struct {
	Expired int `json:"expired"`
}

// Reserve handles POST /books/{id}/reserve.
func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	bookID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req reserveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Reserve(r.Context(), reservation.ReserveInput{
		BookID:    bookID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		LoanDays:  req.LoanDays,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReservationResponse(*res))
}

// List handles GET /reservations.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := reservation.ListInput{
		BookID: q.id("book_id"),
		Status: q.str("status"),
		Email:  q.str("email"),
		Limit:  q.integer("limit"),
		Offset: q.integer("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponses(list))
}

// Get handles GET /reservations/{id}.
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(*res))
}

// Return handles POST /reservations/{id}/return.
func (h *ReservationHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

// Cancel handles POST /reservations/{id}/cancel.
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

// transition applies fn and answers with the reservation as it is afterwards.
// A reservation that was no longer active is reported with updated=false.
func (h *ReservationHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (bool, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transitionResponse{
		Updated:     updated,
		Reservation: toReservationResponse(*res),
	})
}

// Delete handles DELETE /reservations/{id}.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SweepExpired handles POST /reservations/sweep-expired.
func (h *ReservationHandler) SweepExpired(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.SweepExpired(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sweepResponse{Expired: n})
}
