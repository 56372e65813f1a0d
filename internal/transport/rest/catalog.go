package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	CreateBooks(ctx context.Context, inputs []catalog.CreateBookInput) ([]domain.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListBooks(ctx context.Context, input catalog.ListBooksInput) (*catalog.BookPage, error)
	UpdateBook(ctx context.Context, input catalog.UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	CreateCategories(ctx context.Context, inputs []catalog.CreateCategoryInput) ([]domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves book and category endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type createBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	PublishedOn string  `json:"published_on"`
	ISBN        string  `json:"isbn"`
	Synopsis    string  `json:"synopsis"`
	CategoryID  *string `json:"category_id"`
	CoverURL    *string `json:"cover_url"`
	Pages       int     `json:"pages"`
	Language    string  `json:"language"`
}

// updateBookRequest uses raw category_id so that an explicit null can
// detach the book while an absent key leaves it unchanged.
type updateBookRequest struct {
	Title       *string         `json:"title"`
	Author      *string         `json:"author"`
	PublishedOn *string         `json:"published_on"`
	ISBN        *string         `json:"isbn"`
	Synopsis    *string         `json:"synopsis"`
	CategoryID  json.RawMessage `json:"category_id"`
	CoverURL    *string         `json:"cover_url"`
	Pages       *int            `json:"pages"`
	Language    *string         `json:"language"`
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ---------------------------------------------------------------------------
// Books
// ---------------------------------------------------------------------------

// CreateBooks handles POST /books. The body is either one book or an array
// of books; an array is created all-or-nothing and answered with an array.
func (h *CatalogHandler) CreateBooks(w http.ResponseWriter, r *http.Request) {
	var reqs []createBookRequest
	batch, err := decodeOneOrMany(w, r, &reqs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	inputs := make([]catalog.CreateBookInput, 0, len(reqs))
	var errs []domain.FieldError
	for i, req := range reqs {
		in, fieldErrs := req.toInput(itemPrefix(len(reqs), i))
		errs = append(errs, fieldErrs...)
		inputs = append(inputs, in)
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, &domain.ValidationError{Errors: errs})
		return
	}

	books, err := h.svc.CreateBooks(r.Context(), inputs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !batch {
		writeJSON(w, http.StatusCreated, toBookResponse(books[0]))
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponses(books))
}

// ListBooks handles GET /books.
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := catalog.ListBooksInput{
		Search:        q.get("search"),
		Category:      q.get("category"),
		Available:     q.boolean("available"),
		PublishedFrom: q.date("published_from"),
		PublishedTo:   q.date("published_to"),
		Limit:         q.integer("limit"),
		Offset:        q.integer("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListBooks(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = catalog.DefaultPageSize
	}
	writeJSON(w, http.StatusOK, bookPageResponse{
		Books:  toBookResponses(page.Books),
		Total:  page.Total,
		Limit:  limit,
		Offset: input.Offset,
	})
}

// GetBook handles GET /books/{id}.
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(*book))
}

// UpdateBook handles PATCH /books/{id}.
func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(*book))
}

// DeleteBook handles DELETE /books/{id}. Reservations of the book go with it.
func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// CreateCategories handles POST /categories, single or batch like CreateBooks.
func (h *CatalogHandler) CreateCategories(w http.ResponseWriter, r *http.Request) {
	var reqs []categoryRequest
	batch, err := decodeOneOrMany(w, r, &reqs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	inputs := make([]catalog.CreateCategoryInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, catalog.CreateCategoryInput{Name: req.Name, Description: req.Description})
	}

	cats, err := h.svc.CreateCategories(r.Context(), inputs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if !batch {
		writeJSON(w, http.StatusCreated, toCategoryResponse(cats[0]))
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponses(cats))
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// GetCategory handles GET /categories/{id}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cat, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*cat))
}

// UpdateCategory handles PATCH /categories/{id}.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cat, err := h.svc.UpdateCategory(r.Context(), catalog.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*cat))
}

// DeleteCategory handles DELETE /categories/{id}. Its books are detached.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Request mapping
// ---------------------------------------------------------------------------

// decodeOneOrMany decodes either a JSON object or a JSON array of objects
// into dst and reports whether the body was an array.
func decodeOneOrMany[T any](w http.ResponseWriter, r *http.Request, dst *[]T) (bool, error) {
	var raw json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		return false, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := strictUnmarshal(trimmed, dst); err != nil {
			return true, err
		}
		if len(*dst) == 0 {
			return true, domain.NewValidationError("body", "at least one item required")
		}
		return true, nil
	}

	var one T
	if err := strictUnmarshal(trimmed, &one); err != nil {
		return false, err
	}
	*dst = []T{one}
	return false, nil
}

func strictUnmarshal(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// itemPrefix matches the field prefixes the catalog service uses for batches.
func itemPrefix(n, i int) string {
	if n == 1 {
		return ""
	}
	return fmt.Sprintf("[%d].", i)
}

func (req createBookRequest) toInput(prefix string) (catalog.CreateBookInput, []domain.FieldError) {
	var errs []domain.FieldError
	in := catalog.CreateBookInput{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Synopsis: req.Synopsis,
		CoverURL: req.CoverURL,
		Pages:    req.Pages,
		Language: req.Language,
	}

	// A missing date stays zero and is reported by the service.
	if req.PublishedOn != "" {
		if d, fe := parseDate(prefix+"published_on", req.PublishedOn); fe != nil {
			errs = append(errs, *fe)
		} else {
			in.PublishedOn = d
		}
	}

	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + "category_id", Message: "invalid uuid"})
		} else {
			in.CategoryID = &id
		}
	}

	return in, errs
}

func (req updateBookRequest) toInput(id uuid.UUID) (catalog.UpdateBookInput, error) {
	var errs []domain.FieldError
	in := catalog.UpdateBookInput{
		ID:       id,
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Synopsis: req.Synopsis,
		CoverURL: req.CoverURL,
		Pages:    req.Pages,
		Language: req.Language,
	}

	if req.PublishedOn != nil {
		if d, fe := parseDate("published_on", *req.PublishedOn); fe != nil {
			errs = append(errs, *fe)
		} else {
			in.PublishedOn = &d
		}
	}

	switch raw := bytes.TrimSpace(req.CategoryID); {
	case len(raw) == 0:
	case string(raw) == "null":
		in.ClearCategory = true
	default:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be a string or null"})
			break
		}
		cid, err := uuid.Parse(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "category_id", Message: "invalid uuid"})
			break
		}
		in.CategoryID = &cid
	}

	if len(errs) > 0 {
		return in, &domain.ValidationError{Errors: errs}
	}
	return in, nil
}
