package domain

import "strings"

// NormalizeText folds text for comparison: lowercased, trimmed, with every
// run of whitespace (newlines and tabs included) collapsed to one space.
// Diacritics and punctuation are kept.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
