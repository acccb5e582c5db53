// Package session holds the per-user quiz state and its grade/reset
// transitions.
package session

import (
	"github.com/google/uuid"

	"quizpage/internal/grading"
)

// Phase tracks whether grading feedback is on display.
type Phase int

const (
	// PhaseUnanswered is the initial phase; no feedback is shown.
	PhaseUnanswered Phase = iota
	// PhaseGraded shows per-question feedback and the summary.
	PhaseGraded
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseGraded:
		return "graded"
	default:
		return "unknown"
	}
}

// State is the mutable part of a quiz session. Transitions return a new
// State and never modify the receiver's selections in place.
type State struct {
	ID         string
	Selections grading.Selections
	Phase      Phase
	// Feedback is the result shown to the user. It is set only in
	// PhaseGraded and is not recomputed when selections change.
	Feedback *grading.Result
}

// New returns an unanswered state with no selections.
func New(id string) State {
	return State{
		ID:         id,
		Selections: grading.Selections{},
		Phase:      PhaseUnanswered,
	}
}

// NewID returns a random session identifier.
func NewID() string {
	return uuid.NewString()
}

// Selected returns the option key selected for a question, or "".
func (s State) Selected(questionID string) string {
	return s.Selections.Get(questionID)
}

// Graded reports whether feedback is on display.
func (s State) Graded() bool {
	return s.Phase == PhaseGraded && s.Feedback != nil
}
