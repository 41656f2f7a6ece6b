package tally

import "github.com/vinser/asciipath/internal/result"

// Tally counts walked maps by outcome.
type Tally struct {
	passed  int
	failed  int
	letters int
	steps   int
}

func New() *Tally {
	return &Tally{}
}

// Add counts r.
func (t *Tally) Add(r *result.Result) {
	if r.HasErrors() {
		t.failed++
	} else {
		t.passed++
	}
	t.letters += len(r.Letters())
	if n := len(r.Path()); n > 0 {
		t.steps += n - 1
	}
}

// Of returns a tally of results.
func Of(results []*result.Result) *Tally {
	t := New()
	for _, r := range results {
		t.Add(r)
	}
	return t
}

func (t *Tally) Total() int {
	return t.passed + t.failed
}

func (t *Tally) Passed() int {
	return t.passed
}

func (t *Tally) Failed() int {
	return t.failed
}

// Letters returns the number of letters collected over all maps.
func (t *Tally) Letters() int {
	return t.letters
}

// Steps returns the number of moves made over all maps.
func (t *Tally) Steps() int {
	return t.steps
}
