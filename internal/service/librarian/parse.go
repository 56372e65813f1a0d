package librarian

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var errNoJSON = errors.New("no JSON object found in response")

// payload is the union of the structured shapes the completion may return.
// Availability lists are pointers so that an absent list can be told apart
// from an empty one.
type payload struct {
	Type            string    `json:"type"`
	Recommendations []string  `json:"recommendations"`
	Explanation     string    `json:"explanation"`
	Suggestions     []string  `json:"suggestions"`
	Available       *[]string `json:"available"`
	Unavailable     *[]string `json:"unavailable"`
	Answer          string    `json:"answer"`
}

// parsePayload extracts and decodes the JSON object embedded in raw
// completion output. Unknown types are an error.
func parsePayload(raw string) (*payload, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	p.Type = strings.ToLower(strings.TrimSpace(p.Type))
	switch Kind(p.Type) {
	case KindSearch, KindAvailability, KindInfo:
		return &p, nil
	}
	return nil, fmt.Errorf("unknown payload type %q", p.Type)
}

// extractJSON returns the text between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

// cleanTitles drops blank titles and repeats that differ only in case or
// spacing.
func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		key := domain.NormalizeText(t)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(t))
	}
	return out
}
