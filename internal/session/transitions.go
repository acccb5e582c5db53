package session

import (
	"errors"
	"fmt"

	"quizpage/internal/bank"
	"quizpage/internal/grading"
)

// ErrUnknownQuestion is returned when a selection names a question outside the bank.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrUnknownOption is returned when a selection names an option the question lacks.
var ErrUnknownOption = errors.New("unknown option")

// Select records key as the only selected option of a question. The phase
// and any feedback on display are left untouched.
func Select(b *bank.Bank, state State, questionID, key string) (State, error) {
	q, ok := b.Question(questionID)
	if !ok {
		return state, fmt.Errorf("select %q: %w", questionID, ErrUnknownQuestion)
	}
	if _, ok := q.Option(key); !ok {
		return state, fmt.Errorf("select %q for %q: %w", key, questionID, ErrUnknownOption)
	}
	state.Selections = state.Selections.Clone()
	state.Selections[questionID] = key
	return state, nil
}

// Clear removes the selection of a question.
func Clear(b *bank.Bank, state State, questionID string) (State, error) {
	if _, ok := b.Question(questionID); !ok {
		return state, fmt.Errorf("clear %q: %w", questionID, ErrUnknownQuestion)
	}
	state.Selections = state.Selections.Clone()
	delete(state.Selections, questionID)
	return state, nil
}

// Grade scores the current selections and moves the state to PhaseGraded.
func Grade(b *bank.Bank, state State) (State, grading.Result) {
	result := grading.Grade(b, state.Selections)
	state.Phase = PhaseGraded
	state.Feedback = &result
	return state, result
}

// Reset hides feedback and returns to PhaseUnanswered. Selections are kept.
func Reset(state State) State {
	state.Phase = PhaseUnanswered
	state.Feedback = nil
	return state
}
