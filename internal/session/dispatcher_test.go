package session

import (
	"errors"
	"testing"

	"quizpage/internal/grading"
)

// TestDispatcherRunsHandlers verifies handlers fire per action in order.
func TestDispatcherRunsHandlers(t *testing.T) {
	b := defaultBank(t)
	d := NewDispatcher(b, New("s1"))
	var calls []string
	d.OnSelect(func(State) { calls = append(calls, "select") })
	d.OnGrade(func(_ State, result grading.Result) {
		calls = append(calls, "grade")
		if result.CorrectCount != 1 {
			t.Fatalf("expected 1 correct, got %d", result.CorrectCount)
		}
	})
	d.OnGrade(func(State, grading.Result) { calls = append(calls, "grade-2") })
	d.OnReset(func(state State) {
		calls = append(calls, "reset")
		if state.Feedback != nil {
			t.Fatalf("expected feedback to be cleared")
		}
	})

	for _, action := range []Action{
		SelectAction("q1", "c"),
		{Kind: ActionGrade},
		{Kind: ActionReset},
	} {
		if err := d.Dispatch(action); err != nil {
			t.Fatalf("dispatch %s: %v", action.Kind, err)
		}
	}
	want := []string{"select", "grade", "grade-2", "reset"}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, calls)
		}
	}
	if d.State().Selected("q1") != "c" {
		t.Fatalf("expected selection to persist")
	}
}

// TestDispatcherErrorLeavesState verifies failed actions change nothing.
func TestDispatcherErrorLeavesState(t *testing.T) {
	b := defaultBank(t)
	d := NewDispatcher(b, New("s1"))
	d.OnSelect(func(State) { t.Fatalf("handler must not run on error") })
	err := d.Dispatch(SelectAction("q1", "nope"))
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected unknown option, got %v", err)
	}
	if len(d.State().Selections) != 0 {
		t.Fatalf("expected no selections, got %+v", d.State().Selections)
	}
}
