package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var validate = validator.New()

// CreateBookInput holds the parameters for creating a book.
type CreateBookInput struct {
	Title       string
	Author      string
	PublishedOn time.Time
	ISBN        string
	Synopsis    string
	CategoryID  *uuid.UUID
	CoverURL    *string
	Pages       int
	Language    string
}

// Validate checks all fields and collects all errors.
func (i CreateBookInput) Validate() error {
	errs := i.fieldErrors("")
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateBookInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: prefix + field, Message: msg})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		add("title", "required")
	}
	if utf8.RuneCountInString(title) > 200 {
		add("title", "max 200 characters")
	}

	author := strings.TrimSpace(i.Author)
	if author == "" {
		add("author", "required")
	}
	if utf8.RuneCountInString(author) > 100 {
		add("author", "max 100 characters")
	}

	if i.PublishedOn.IsZero() {
		add("published_on", "required")
	}

	isbn := strings.TrimSpace(i.ISBN)
	switch {
	case isbn == "":
		add("isbn", "required")
	case len(isbn) > 13:
		add("isbn", "max 13 characters")
	case validate.Var(isbn, "alphanum") != nil:
		add("isbn", "must contain only digits and letters")
	}

	if i.CoverURL != nil && *i.CoverURL != "" {
		if err := validate.Var(*i.CoverURL, "url"); err != nil {
			add("cover_url", "invalid URL")
		}
	}
	if i.Pages < 0 {
		add("pages", "must be >= 0")
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Language)) > 50 {
		add("language", "max 50 characters")
	}

	return errs
}

func (i CreateBookInput) toDomain() *domain.Book {
	b := &domain.Book{
		Title:       strings.TrimSpace(i.Title),
		Author:      strings.TrimSpace(i.Author),
		PublishedOn: i.PublishedOn,
		ISBN:        strings.TrimSpace(i.ISBN),
		Synopsis:    strings.TrimSpace(i.Synopsis),
		CategoryID:  i.CategoryID,
		Pages:       i.Pages,
		Language:    strings.TrimSpace(i.Language),
	}
	if i.CoverURL != nil && strings.TrimSpace(*i.CoverURL) != "" {
		u := strings.TrimSpace(*i.CoverURL)
		b.CoverURL = &u
	}
	return b
}

// UpdateBookInput holds the parameters for a partial book update.
// The availability flag is owned by the reservation engine and cannot be set here.
type UpdateBookInput struct {
	ID            uuid.UUID
	Title         *string
	Author        *string
	PublishedOn   *time.Time
	ISBN          *string
	Synopsis      *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	CoverURL      *string // ptr("") = clear
	Pages         *int
	Language      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateBookInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		if t == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if utf8.RuneCountInString(t) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Author != nil {
		a := strings.TrimSpace(*i.Author)
		if a == "" {
			errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
		}
		if utf8.RuneCountInString(a) > 100 {
			errs = append(errs, domain.FieldError{Field: "author", Message: "max 100 characters"})
		}
	}
	if i.PublishedOn != nil && i.PublishedOn.IsZero() {
		errs = append(errs, domain.FieldError{Field: "published_on", Message: "invalid date"})
	}
	if i.ISBN != nil {
		isbn := strings.TrimSpace(*i.ISBN)
		if isbn == "" || len(isbn) > 13 || validate.Var(isbn, "alphanum") != nil {
			errs = append(errs, domain.FieldError{Field: "isbn", Message: "1-13 digits and letters"})
		}
	}
	if i.CategoryID != nil && i.ClearCategory {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "cannot set and clear at once"})
	}
	if i.CoverURL != nil && *i.CoverURL != "" && validate.Var(*i.CoverURL, "url") != nil {
		errs = append(errs, domain.FieldError{Field: "cover_url", Message: "invalid URL"})
	}
	if i.Pages != nil && *i.Pages < 0 {
		errs = append(errs, domain.FieldError{Field: "pages", Message: "must be >= 0"})
	}
	if i.Language != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Language)) > 50 {
		errs = append(errs, domain.FieldError{Field: "language", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateBookInput) params() domain.BookUpdateParams {
	return domain.BookUpdateParams{
		Title:         trimPtr(i.Title),
		Author:        trimPtr(i.Author),
		PublishedOn:   i.PublishedOn,
		ISBN:          trimPtr(i.ISBN),
		Synopsis:      trimPtr(i.Synopsis),
		CategoryID:    i.CategoryID,
		ClearCategory: i.ClearCategory,
		CoverURL:      trimPtr(i.CoverURL),
		Pages:         i.Pages,
		Language:      languageOrDefault(i.Language),
	}
}

// languageOrDefault maps a blank language to domain.DefaultLanguage, as
// Create does.
func languageOrDefault(s *string) *string {
	v := trimPtr(s)
	if v != nil && *v == "" {
		def := domain.DefaultLanguage
		return &def
	}
	return v
}

// ListBooksInput holds filters for listing books.
type ListBooksInput struct {
	Search        string
	Category      string
	Available     *bool
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListBooksInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxPageSize)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if i.PublishedFrom != nil && i.PublishedTo != nil && i.PublishedFrom.After(*i.PublishedTo) {
		errs = append(errs, domain.FieldError{Field: "published_from", Message: "must not be after published_to"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListBooksInput) filter() domain.BookFilter {
	f := domain.BookFilter{
		Available:     i.Available,
		PublishedFrom: i.PublishedFrom,
		PublishedTo:   i.PublishedTo,
		Limit:         i.Limit,
		Offset:        i.Offset,
	}
	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	if c := strings.TrimSpace(i.Category); c != "" {
		f.Category = &c
	}
	if f.Limit == 0 {
		f.Limit = DefaultPageSize
	}
	return f
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	errs := i.fieldErrors("")
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateCategoryInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "max 100 characters"})
	}
	return errs
}

// UpdateCategoryInput holds the parameters for a partial category update.
type UpdateCategoryInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if utf8.RuneCountInString(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// batchPrefix names an element of a batch in field errors. Single-element
// batches keep plain field names.
func batchPrefix(n, i int) string {
	if n == 1 {
		return ""
	}
	return fmt.Sprintf("[%d].", i)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
