package session

import (
	"fmt"

	"quizpage/internal/bank"
)

// ActionKind identifies a user action.
type ActionKind int

const (
	// ActionSelect chooses an option for a question.
	ActionSelect ActionKind = iota
	// ActionClear removes the selection of a question.
	ActionClear
	// ActionGrade grades every question.
	ActionGrade
	// ActionReset hides feedback.
	ActionReset
)

// String returns the command name of the action.
func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionClear:
		return "clear"
	case ActionGrade:
		return "grade"
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a single user-triggered event.
type Action struct {
	Kind       ActionKind
	QuestionID string
	Key        string
}

// SelectAction builds an ActionSelect.
func SelectAction(questionID, key string) Action {
	return Action{Kind: ActionSelect, QuestionID: questionID, Key: key}
}

// Reduce applies an action to the state.
func Reduce(b *bank.Bank, state State, action Action) (State, error) {
	switch action.Kind {
	case ActionSelect:
		return Select(b, state, action.QuestionID, action.Key)
	case ActionClear:
		return Clear(b, state, action.QuestionID)
	case ActionGrade:
		next, _ := Grade(b, state)
		return next, nil
	case ActionReset:
		return Reset(state), nil
	default:
		return state, fmt.Errorf("unsupported action %s", action.Kind)
	}
}
