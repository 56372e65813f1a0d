package reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var validate = validator.New()

// ReserveInput holds the parameters for reserving a book.
type ReserveInput struct {
	BookID    uuid.UUID
	UserName  string
	UserEmail string
	LoanDays  int // 0 = configured default
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i ReserveInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}

	name := strings.TrimSpace(i.UserName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "max 100 characters"})
	}

	email := strings.TrimSpace(i.UserEmail)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "user_email", Message: "required"})
	} else if err := validate.Var(email, "email"); err != nil {
		errs = append(errs, domain.FieldError{Field: "user_email", Message: "invalid email"})
	}

	if i.LoanDays < 0 {
		errs = append(errs, domain.FieldError{Field: "loan_days", Message: "must be positive"})
	}
	if i.LoanDays > domain.MaxLoanDays {
		errs = append(errs, domain.FieldError{Field: "loan_days", Message: fmt.Sprintf("max %d days", domain.MaxLoanDays)})
	}

	if utf8.RuneCountInString(i.Notes) > 1000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filters for listing reservations.
type ListInput struct {
	BookID *uuid.UUID
	Status *string
	Email  *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !domain.ReservationStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of active, completed, cancelled, expired"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.ReservationFilter {
	f := domain.ReservationFilter{
		BookID: i.BookID,
		Email:  i.Email,
		Limit:  i.Limit,
		Offset: i.Offset,
	}
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if i.Status != nil {
		st := domain.ReservationStatus(*i.Status)
		f.Status = &st
	}
	return f
}
