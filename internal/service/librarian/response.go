package librarian

import (
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Kind is the shape of an assistant response.
type Kind string

const (
	KindSearch       Kind = "search"
	KindAvailability Kind = "availability"
	KindInfo         Kind = "info"
	KindError        Kind = "error"
)

const (
	// FallbackMessage is returned as an info answer when the completion
	// output cannot be understood.
	FallbackMessage = "I could not process your question. Please try rephrasing it."
	// NoBooksMessage explains an empty search result.
	NoBooksMessage = "No relevant books were found."
	// UnavailableMessage is the answer of an error-kind response.
	UnavailableMessage = "The librarian assistant is temporarily unavailable. Please try again later."
)

// Response is the structured answer of the assistant.
//
// Search responses carry Books, Explanation and Suggestions. Availability
// responses carry Available and Unavailable. Info and error responses carry
// only Explanation.
type Response struct {
	Kind        Kind
	Explanation string
	Suggestions []string
	// Recommended are the raw titles proposed by the completion service.
	Recommended []string
	Books       []domain.Book
	Available   []domain.Book
	Unavailable []domain.Book
}

func infoResponse(text string) *Response {
	return &Response{Kind: KindInfo, Explanation: text}
}

func errorResponse() *Response {
	return &Response{Kind: KindError, Explanation: UnavailableMessage}
}

// SearchResult is the outcome of a natural-language book search.
type SearchResult struct {
	Books       []domain.Book
	Explanation string
	Suggestions []string
}
