package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is the language assigned to books created without one.
const DefaultLanguage = "Spanish"

// Book is a catalog record. Available is owned by the reservation engine:
// it is false exactly while an active reservation exists for the book.
type Book struct {
	ID           uuid.UUID
	Title        string
	Author       string
	PublishedOn  time.Time
	ISBN         string
	Synopsis     string
	CategoryID   *uuid.UUID
	CategoryName *string
	CoverURL     *string
	Pages        int
	Language     string
	Available    bool
	CreatedAt    time.Time
}

// Category groups books. Deleting a category detaches its books.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// BookFilter contains filtering/pagination parameters for book listings.
type BookFilter struct {
	// Search matches title, author or synopsis (case-insensitive substring).
	Search        *string
	Category      *string
	Available     *bool
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Limit         int
	Offset        int
}

// BookUpdateParams holds optional fields for a partial book update.
// A nil pointer means "leave unchanged".
type BookUpdateParams struct {
	Title       *string
	Author      *string
	PublishedOn *time.Time
	ISBN        *string
	Synopsis    *string
	CategoryID  *uuid.UUID
	// ClearCategory detaches the book from its category.
	ClearCategory bool
	CoverURL      *string
	Pages         *int
	Language      *string
}

// CategoryUpdateParams holds optional fields for a partial category update.
type CategoryUpdateParams struct {
	Name        *string
	Description *string
}
