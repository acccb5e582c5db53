package session

import (
	"quizpage/internal/bank"
	"quizpage/internal/grading"
)

// Dispatcher applies actions from a UI event source to a session and calls
// the handlers registered for each action. It is not safe for concurrent
// use; surfaces feed it from a single event loop.
type Dispatcher struct {
	bank     *bank.Bank
	state    State
	onSelect []func(State)
	onGrade  []func(State, grading.Result)
	onReset  []func(State)
}

// NewDispatcher starts a dispatcher at the given state.
func NewDispatcher(b *bank.Bank, state State) *Dispatcher {
	return &Dispatcher{bank: b, state: state}
}

// Bank returns the bank the session grades against.
func (d *Dispatcher) Bank() *bank.Bank {
	return d.bank
}

// State returns the current session state.
func (d *Dispatcher) State() State {
	return d.state
}

// OnSelect registers a handler run after a selection changes.
func (d *Dispatcher) OnSelect(fn func(State)) {
	d.onSelect = append(d.onSelect, fn)
}

// OnGrade registers a handler run after grading.
func (d *Dispatcher) OnGrade(fn func(State, grading.Result)) {
	d.onGrade = append(d.onGrade, fn)
}

// OnReset registers a handler run after a reset.
func (d *Dispatcher) OnReset(fn func(State)) {
	d.onReset = append(d.onReset, fn)
}

// Dispatch applies an action and notifies handlers. On error the state is
// unchanged and no handler runs.
func (d *Dispatcher) Dispatch(action Action) error {
	next, err := Reduce(d.bank, d.state, action)
	if err != nil {
		return err
	}
	d.state = next
	switch action.Kind {
	case ActionSelect, ActionClear:
		for _, fn := range d.onSelect {
			fn(next)
		}
	case ActionGrade:
		for _, fn := range d.onGrade {
			fn(next, *next.Feedback)
		}
	case ActionReset:
		for _, fn := range d.onReset {
			fn(next)
		}
	}
	return nil
}
