// Package residence toggles the company details form between a company
// registered in the UK and one registered overseas.
//
// The form is a two-state machine moved only by clicks on the UK and
// overseas radios. Each state shows a fixed set of form sections and hides
// the rest. Entering UK forces the country to "UK"; entering overseas with a
// stale "UK" country clears the country and postcode.
package residence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ers-returns/fileupload/pkg/statemachine"
)

const (
	UK       = statemachine.StringState("uk")
	Overseas = statemachine.StringState("overseas")

	ClickUK       = statemachine.StringEvent("click_uk")
	ClickOverseas = statemachine.StringEvent("click_overseas")
)

// CountryUK is the country value bound to the UK state.
const CountryUK = "UK"

// Section is the class of a toggled group of form fields.
type Section string

const (
	SectionCountry        Section = "country-group"
	SectionPostcode       Section = "postcode-group"
	SectionCompanyReg     Section = "company-reg-group"
	SectionCorporationRef Section = "corporation-ref-group"
)

var sections = map[statemachine.State][]Section{
	UK:       {SectionPostcode, SectionCompanyReg, SectionCorporationRef},
	Overseas: {SectionCountry},
}

var (
	ErrUnknownChoice   = errors.New("unknown residence choice")
	ErrImpossibleClick = errors.New("click not possible in this state")
)

// Form holds the fields the toggler rewrites.
type Form struct {
	Country  string
	Postcode string
}

// Toggler is the residence state of one form.
type Toggler struct {
	m    statemachine.Machine
	form Form
}

// New derives the initial state from the form by simulating a click on the
// radio matching the country: UK for "UK" or an empty value, overseas for
// anything else.
func New(ctx context.Context, form Form) (*Toggler, error) {
	t := newToggler(UK, form)
	ev := ClickOverseas
	if form.Country == "" || form.Country == CountryUK {
		ev = ClickUK
	}
	if err := t.Click(ctx, ev); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore resumes a toggler already in state without running any effects.
func Restore(state statemachine.State, form Form) *Toggler {
	if state != Overseas {
		state = UK
	}
	return newToggler(state, form)
}

func newToggler(initial statemachine.State, form Form) *Toggler {
	t := &Toggler{form: form}
	t.m = statemachine.MustNew(initial,
		statemachine.WithTransition(UK, UK, ClickUK),
		statemachine.WithTransition(Overseas, UK, ClickUK),
		statemachine.WithTransition(UK, Overseas, ClickOverseas),
		statemachine.WithTransition(Overseas, Overseas, ClickOverseas),
		statemachine.WithEntryAction(UK, t.enterUK),
		statemachine.WithEntryAction(Overseas, t.enterOverseas),
	)
	return t
}

func (t *Toggler) enterUK(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	t.form.Country = CountryUK
	return nil
}

func (t *Toggler) enterOverseas(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	if t.form.Country == CountryUK {
		t.form.Country = ""
		t.form.Postcode = ""
	}
	return nil
}

// Click applies a radio click. An event neither state accepts returns
// ErrImpossibleClick and leaves the form untouched.
func (t *Toggler) Click(ctx context.Context, ev statemachine.Event) error {
	err := t.m.Fire(ctx, ev, nil)
	switch {
	case err == nil:
		return nil
	case ev == nil || statemachine.IsNoTransitionAvailableError(err):
		return fmt.Errorf("%w: %w", ErrImpossibleClick, err)
	default:
		return fmt.Errorf("residence click %s: %w", ev.Name(), err)
	}
}

// State returns UK or Overseas.
func (t *Toggler) State() statemachine.State {
	return t.m.Current()
}

// Form returns the current field values.
func (t *Toggler) Form() Form {
	return t.form
}

// Visible reports whether s is shown in the current state.
func (t *Toggler) Visible(s Section) bool {
	for _, shown := range sections[t.State()] {
		if shown == s {
			return true
		}
	}
	return false
}

// Sections returns the shown and hidden sections of the current state.
func (t *Toggler) Sections() (show, hide []Section) {
	for _, s := range []Section{SectionCountry, SectionPostcode, SectionCompanyReg, SectionCorporationRef} {
		if t.Visible(s) {
			show = append(show, s)
		} else {
			hide = append(hide, s)
		}
	}
	return show, hide
}

// ParseChoice maps a radio value ("uk" or "overseas") to its click event.
func ParseChoice(v string) (statemachine.Event, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case UK.Name():
		return ClickUK, nil
	case Overseas.Name():
		return ClickOverseas, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChoice, v)
}

// ParseState maps a stored state name to UK or Overseas. Unknown values are UK.
func ParseState(v string) statemachine.State {
	if strings.EqualFold(strings.TrimSpace(v), Overseas.Name()) {
		return Overseas
	}
	return UK
}
