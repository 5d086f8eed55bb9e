// Package formstate derives what an upload form shows after a validation
// batch: the error banner, the submit control, the validation summary and
// the per-input markers.
package formstate

import "github.com/ers-returns/fileupload/pkg/fileselect"

const (
	// BannerID is the element id of the error banner. At most one exists.
	BannerID = "error-summary"
	// ErrorRegionID receives focus when a batch is rejected.
	ErrorRegionID = "errors"
)

// Banner is the error message placed next to the upload widget.
type Banner struct {
	ID      string
	Message string
	// InputID is the input whose rejection owns the banner.
	InputID string
}

// State is the full set of form mutations for one batch.
type State struct {
	Banner         *Banner
	SubmitDisabled bool
	SummaryVisible bool
	SummaryLink    string
	FormErrored    bool
	Focus          string
	Alerts         map[string]bool
	Duplicates     map[string]bool
}

// FromBatch maps a batch to the form state. A batch with no rejections
// yields no banner, no alert markers and an enabled submit control.
// Duplicate markers are carried either way.
func FromBatch(b *fileselect.Batch) State {
	s := State{
		Alerts:     make(map[string]bool),
		Duplicates: make(map[string]bool, len(b.Duplicates)),
	}
	for id, dup := range b.Duplicates {
		if dup {
			s.Duplicates[id] = true
		}
	}

	last, rejected := b.Last()
	if !rejected {
		return s
	}

	s.Banner = &Banner{ID: BannerID, Message: last.Rejection.Message, InputID: last.InputID}
	s.SubmitDisabled = true
	s.SummaryVisible = true
	s.SummaryLink = last.Rejection.Message
	s.FormErrored = true
	s.Focus = ErrorRegionID
	for _, id := range b.Rejected() {
		s.Alerts[id] = true
	}
	return s
}

// Marked reports whether the input's widget carries the alert styling,
// either from a rejection or a duplicate name.
func (s State) Marked(inputID string) bool {
	return s.Alerts[inputID] || s.Duplicates[inputID]
}

// Clean is the state of a form before any selection.
func Clean() State {
	return State{Alerts: map[string]bool{}, Duplicates: map[string]bool{}}
}
