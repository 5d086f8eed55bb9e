// Package statemachine implements a small finite state machine driven by
// named events.
//
// Transitions are registered with options, one per state and event. Entry
// actions run before the state changes whenever a state is entered,
// including self transitions.
//
//	const (
//	    UK       = statemachine.StringState("uk")
//	    Overseas = statemachine.StringState("overseas")
//	    ClickUK  = statemachine.StringEvent("click_uk")
//	)
//
//	m := statemachine.MustNew(UK,
//	    statemachine.WithTransition(Overseas, UK, ClickUK),
//	    statemachine.WithEntryAction(UK, setCountryUK),
//	)
//	err := m.Fire(ctx, ClickUK, form)
//
// Fire reports ErrNoTransitionAvailable when the current state has no
// transition for the event. A failing entry action leaves the state
// unchanged. A Machine is safe for concurrent use.
package statemachine
