package grading

import (
	"fmt"
	"os"
	"strings"

	"quizpage/internal/question"
)

// Selections maps question ids to the chosen option key. A missing id or an
// empty key means no option is selected.
type Selections map[string]string

// Get returns the selected key for a question, or "" when none is selected.
func (s Selections) Get(questionID string) string {
	if s == nil {
		return ""
	}
	return s[questionID]
}

// Clone returns an independent copy.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for id, key := range s {
		out[id] = key
	}
	return out
}

// Equal reports whether both sets select the same keys. Empty keys are
// treated as absent.
func (s Selections) Equal(other Selections) bool {
	for id, key := range s {
		if other.Get(id) != key {
			return false
		}
	}
	for id, key := range other {
		if s.Get(id) != key {
			return false
		}
	}
	return true
}

// LoadSelections reads an answers file mapping question ids to option keys.
func LoadSelections(path string) (Selections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return ParseSelections(data, question.FormatFromPath(path))
}

// ParseSelections decodes an answers document. Keys and values are trimmed
// and empty values are dropped. A blank document means no selections.
func ParseSelections(data []byte, format question.Format) (Selections, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Selections{}, nil
	}
	raw := map[string]string{}
	var err error
	switch format {
	case question.FormatJSON:
		err = question.DecodeJSON(data, &raw)
	default:
		err = question.DecodeYAML(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("answers: %w", err)
	}
	selections := make(Selections, len(raw))
	for id, key := range raw {
		id = question.NormalizeKey(id)
		key = question.NormalizeKey(key)
		if id == "" || key == "" {
			continue
		}
		selections[id] = key
	}
	return selections, nil
}
