package statemachine

import (
	"context"
	"fmt"
	"sync"
)

type machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[string]map[string]Transition
	onEnter     map[string][]Action
}

func newMachine(initial State) *machine {
	return &machine{
		current:     initial,
		transitions: make(map[string]map[string]Transition),
		onEnter:     make(map[string][]Action),
	}
}

func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *machine) addTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	if _, dup := byEvent[t.Event.Name()]; dup {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateTransition, t.From.Name(), t.Event.Name())
	}
	byEvent[t.Event.Name()] = t
	return nil
}

func (m *machine) addEntryAction(state State, action Action) error {
	if state == nil || action == nil {
		return ErrInvalidTransition
	}
	m.onEnter[state.Name()] = append(m.onEnter[state.Name()], action)
	return nil
}

func (m *machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[m.current.Name()][event.Name()]
	if !ok {
		return NewErrNoTransitionAvailable(m.current.Name(), event.Name())
	}

	for _, action := range m.onEnter[t.To.Name()] {
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}
