package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// maxBodyBytes bounds request bodies; a batch of books is the largest payload.
const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

type errorResponse struct {
	Error     string           `json:"error"`
	Fields    []fieldErrorJSON `json:"fields,omitempty"`
	RequestID string           `json:"request_id,omitempty"`
}

type fieldErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP statuses. Anything unrecognised is
// logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorJSON{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrBookUnavailable):
		writeError(w, http.StatusConflict, "book is not available")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		requestID := ctxutil.RequestIDFromCtx(r.Context())
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:     "internal server error",
			RequestID: requestID,
		})
	}
}

// decodeJSON reads a single JSON document into dst, rejecting unknown fields
// and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("max %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON value")
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid uuid")
	}
	return id, nil
}

// queryParams collects parse errors of query string parameters.
type queryParams struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) get(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *queryParams) str(name string) *string {
	v := q.get(name)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) integer(name string) int {
	v := q.get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return n
}

func (q *queryParams) boolean(name string) *bool {
	v := q.get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be a boolean"})
		return nil
	}
	return &b
}

func (q *queryParams) date(name string) *time.Time {
	v := q.get(name)
	if v == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be a date (YYYY-MM-DD)"})
		return nil
	}
	return &d
}

func (q *queryParams) id(name string) *uuid.UUID {
	v := q.get(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "invalid uuid"})
		return nil
	}
	return &id
}

func (q *queryParams) err() error {
	if len(q.errs) > 0 {
		return &domain.ValidationError{Errors: q.errs}
	}
	return nil
}

func parseDate(field, v string) (time.Time, *domain.FieldError) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, &domain.FieldError{Field: field, Message: "must be a date (YYYY-MM-DD)"}
	}
	return d, nil
}
