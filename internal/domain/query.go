package domain

import (
	"time"

	"github.com/google/uuid"
)

// Query is a logged free-text question to the librarian.
// Answer is empty until the question has been processed and is written once.
type Query struct {
	ID        uuid.UUID
	Text      string
	Answer    string
	CreatedAt time.Time
}

// IsAnswered reports whether the answer has already been recorded.
func (q *Query) IsAnswered() bool {
	return q.Answer != ""
}
