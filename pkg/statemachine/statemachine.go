package statemachine

import "context"

// State is a named machine state.
type State interface {
	Name() string
}

// Event is a named trigger.
type Event interface {
	Name() string
}

// Action runs a side effect of a transition. A non-nil error aborts it.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition is a state change triggered by an event.
type Transition struct {
	From  State
	To    State
	Event Event
}

// Machine is a finite state machine.
type Machine interface {
	Current() State
	Fire(ctx context.Context, event Event, data any) error
}

// StringState is a State named by its value.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent is an Event named by its value.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
