package fileselect

// Result is the outcome for one input of a batch.
type Result struct {
	InputID string
	Outcome
}

// Batch accumulates the outcomes of one change event.
type Batch struct {
	Flow    Flow
	Results []Result
	// Errors counts rejected inputs. Duplicate marks are not counted.
	Errors int
	// Duplicates holds the ids of inputs sharing a selected name.
	Duplicates map[string]bool

	last int
}

func newBatch(flow Flow) *Batch {
	return &Batch{Flow: flow, Duplicates: make(map[string]bool), last: -1}
}

func (b *Batch) add(r Result) {
	b.Results = append(b.Results, r)
	if !r.Ok() {
		b.Errors++
		b.last = len(b.Results) - 1
	}
}

func (b *Batch) markDuplicates(name string, selected []Result) {
	for _, r := range selected {
		if r.File.Name == name {
			b.Duplicates[r.InputID] = true
		}
	}
}

// Ok reports whether no input was rejected.
func (b *Batch) Ok() bool {
	return b.Errors == 0
}

// Last returns the last rejected result. Its message owns the error banner.
func (b *Batch) Last() (Result, bool) {
	if b.last < 0 {
		return Result{}, false
	}
	return b.Results[b.last], true
}

// Rejected returns the ids of the rejected inputs in input order.
func (b *Batch) Rejected() []string {
	ids := make([]string, 0, b.Errors)
	for _, r := range b.Results {
		if !r.Ok() {
			ids = append(ids, r.InputID)
		}
	}
	return ids
}

// Result returns the outcome for inputID.
func (b *Batch) Result(inputID string) (Result, bool) {
	for _, r := range b.Results {
		if r.InputID == inputID {
			return r, true
		}
	}
	return Result{}, false
}
