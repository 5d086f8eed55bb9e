package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/pkg/statemachine"
)

const (
	Empty    = statemachine.StringState("empty")
	Selected = statemachine.StringState("selected")

	Choose = statemachine.StringEvent("choose")
	Remove = statemachine.StringEvent("remove")
)

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := statemachine.MustNew(Empty,
		statemachine.WithTransition(Empty, Selected, Choose),
		statemachine.WithTransition(Selected, Selected, Choose),
		statemachine.WithTransition(Selected, Empty, Remove),
	)
	assert.Equal(t, Empty, m.Current())

	require.NoError(t, m.Fire(ctx, Choose, nil))
	assert.Equal(t, Selected, m.Current())

	require.NoError(t, m.Fire(ctx, Choose, nil))
	assert.Equal(t, Selected, m.Current())

	require.NoError(t, m.Fire(ctx, Remove, nil))
	assert.Equal(t, Empty, m.Current())

	err := m.Fire(ctx, Remove, nil)
	assert.True(t, statemachine.IsNoTransitionAvailableError(err))
	assert.EqualError(t, err, "no transition available from state 'empty' for event 'remove'")
	assert.Equal(t, Empty, m.Current())

	assert.ErrorIs(t, m.Fire(ctx, nil, nil), statemachine.ErrInvalidEvent)
	assert.False(t, statemachine.IsNoTransitionAvailableError(errors.New("other")))
}

func TestMachine_EntryActions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var calls []string
	record := func(name string) statemachine.Action {
		return func(_ context.Context, from, to statemachine.State, _ statemachine.Event, data any) error {
			calls = append(calls, name+":"+from.Name()+"->"+to.Name()+":"+data.(string))
			return nil
		}
	}

	m := statemachine.MustNew(Empty,
		statemachine.WithTransition(Empty, Selected, Choose),
		statemachine.WithTransition(Selected, Selected, Choose),
		statemachine.WithTransition(Selected, Empty, Remove),
		statemachine.WithEntryAction(Selected, record("enter")),
		statemachine.WithEntryAction(Selected, record("again")),
	)

	require.NoError(t, m.Fire(ctx, Choose, "a.csv"))
	require.NoError(t, m.Fire(ctx, Choose, "b.csv"))
	require.NoError(t, m.Fire(ctx, Remove, ""))
	assert.Equal(t, []string{
		"enter:empty->selected:a.csv",
		"again:empty->selected:a.csv",
		"enter:selected->selected:b.csv",
		"again:selected->selected:b.csv",
	}, calls)
}

func TestMachine_FailingActionAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := statemachine.MustNew(Empty,
		statemachine.WithTransition(Empty, Selected, Choose),
		statemachine.WithEntryAction(Selected, func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
			return boom
		}),
	)

	err := m.Fire(context.Background(), Choose, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Empty, m.Current())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.Error(t, err)

	_, err = statemachine.New(Empty, statemachine.WithTransition(nil, Selected, Choose))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	_, err = statemachine.New(Empty,
		statemachine.WithTransition(Empty, Selected, Choose),
		statemachine.WithTransition(Empty, Empty, Choose),
	)
	assert.ErrorIs(t, err, statemachine.ErrDuplicateTransition)

	_, err = statemachine.New(Empty, statemachine.WithEntryAction(Selected, nil))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() { statemachine.MustNew(nil) })
}
