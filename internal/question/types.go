package question

// Type enumerates the supported question kinds.
type Type string

const (
	// TypeSingle is a question with exactly one correct option.
	TypeSingle Type = "single"
)

// Spec defines the question bank document loaded from YAML or JSON.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Type    Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Context string   `json:"context,omitempty" yaml:"context,omitempty"`
	Options []Option `json:"options" yaml:"options"`
	Correct string   `json:"correct" yaml:"correct"`
	Explain string   `json:"explain" yaml:"explain"`
}

// Option is one selectable answer of a question.
type Option struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// HasContext reports whether the question carries a context block.
func (q Question) HasContext() bool {
	return q.Context != ""
}

// Option returns the option with the given key.
func (q Question) Option(key string) (Option, bool) {
	for _, option := range q.Options {
		if option.Key == key {
			return option, true
		}
	}
	return Option{}, false
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	clone := q
	clone.Options = append([]Option(nil), q.Options...)
	return clone
}
