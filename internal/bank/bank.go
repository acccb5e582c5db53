// Package bank holds the immutable, validated question bank.
package bank

import (
	"fmt"

	"quizpage/internal/question"
)

// DefaultTitle is used when a bank document does not name itself.
const DefaultTitle = "Quiz"

// Bank is an ordered, read-only collection of questions. It is fixed at
// construction and safe to share.
type Bank struct {
	title     string
	questions []question.Question
	index     map[string]int
}

// New validates questions and builds a bank. Authoring defects such as
// duplicate ids or a dangling correct key are returned as a
// *question.ValidationError and the bank is not built.
func New(title string, questions []question.Question) (*Bank, error) {
	normalized, err := question.NormalizeQuestions(questions)
	if err != nil {
		return nil, err
	}
	return build(title, normalized), nil
}

// FromSpec builds a bank from an already normalized document.
func FromSpec(spec question.Spec) (*Bank, error) {
	return New(spec.Title, spec.Questions)
}

// Load reads a bank document from disk.
func Load(path string) (*Bank, error) {
	spec, err := question.LoadSpec(path)
	if err != nil {
		return nil, err
	}
	b, err := FromSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("build bank from %s: %w", path, err)
	}
	return b, nil
}

func build(title string, questions []question.Question) *Bank {
	if title == "" {
		title = DefaultTitle
	}
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		index[q.ID] = i
	}
	return &Bank{title: title, questions: questions, index: index}
}

// Title returns the display title of the bank.
func (b *Bank) Title() string {
	return b.title
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns the questions in bank order. The result is a copy.
func (b *Bank) All() []question.Question {
	out := make([]question.Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.Clone()
	}
	return out
}

// Question looks up a question by id.
func (b *Bank) Question(id string) (question.Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return question.Question{}, false
	}
	return b.questions[i].Clone(), true
}

// Position returns the zero-based position of a question id.
func (b *Bank) Position(id string) (int, bool) {
	i, ok := b.index[id]
	return i, ok
}
