package librarian

import (
	"strings"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// AvailabilityIntent is what an availability question asks about.
type AvailabilityIntent int

const (
	IntentUnknown AvailabilityIntent = iota
	IntentAvailable
	IntentUnavailable
)

func (i AvailabilityIntent) String() string {
	switch i {
	case IntentAvailable:
		return "available"
	case IntentUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// OrAvailable maps IntentUnknown to IntentAvailable.
func (i AvailabilityIntent) OrAvailable() AvailabilityIntent {
	if i == IntentUnknown {
		return IntentAvailable
	}
	return i
}

// Keyword lists are checked in order: unavailable terms first, since several
// of them contain an "available" term.
var (
	unavailableKeywords = []string{
		"unavailable", "not available", "reserved", "checked out", "on loan",
		"borrowed", "taken", "no disponible", "reservado", "prestado", "ocupado",
	}
	availableKeywords = []string{
		"available", "free", "in stock", "can i borrow", "disponible", "libre",
	}
)

// ClassifyAvailability decides from keywords whether a question asks for
// available or unavailable books. It returns IntentUnknown when no keyword
// matches.
func ClassifyAvailability(text string) AvailabilityIntent {
	t := domain.NormalizeText(text)
	for _, kw := range unavailableKeywords {
		if strings.Contains(t, kw) {
			return IntentUnavailable
		}
	}
	for _, kw := range availableKeywords {
		if strings.Contains(t, kw) {
			return IntentAvailable
		}
	}
	return IntentUnknown
}
