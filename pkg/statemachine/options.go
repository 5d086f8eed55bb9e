package statemachine

import "fmt"

// Option configures a machine during construction.
type Option func(*machine) error

// New creates a machine starting in initial.
func New(initial State, opts ...Option) (Machine, error) {
	if initial == nil {
		return nil, fmt.Errorf("initial state cannot be nil")
	}

	m := newMachine(initial)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initial State, opts ...Option) Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition registers from -> to on event. Each state accepts an event
// at most once.
func WithTransition(from, to State, event Event) Option {
	return func(m *machine) error {
		return m.addTransition(Transition{From: from, To: to, Event: event})
	}
}

// WithEntryAction runs action whenever state is entered, including self
// transitions.
func WithEntryAction(state State, action Action) Option {
	return func(m *machine) error {
		return m.addEntryAction(state, action)
	}
}
