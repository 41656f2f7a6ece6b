// Package result holds the outcome of walking one map.
package result

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vinser/asciipath/internal/board"
)

// Result is the record produced for one map. It is not modified after
// New returns it.
type Result struct {
	name    string
	path    string
	letters string
	board   *board.Board
	trail   []board.Position
	errs    []error
}

// New builds a Result. errs may be empty.
func New(name, path, letters string, b *board.Board, trail []board.Position, errs ...error) *Result {
	r := &Result{
		name:    name,
		path:    path,
		letters: letters,
		board:   b,
		trail:   append([]board.Position(nil), trail...),
	}
	for _, err := range errs {
		if err != nil {
			r.errs = append(r.errs, err)
		}
	}
	return r
}

// Name returns the map identifier.
func (r *Result) Name() string { return r.name }

// Path returns the characters walked, starting with '@'.
func (r *Result) Path() string { return r.path }

// Letters returns the collected letters.
func (r *Result) Letters() string { return r.letters }

// Board returns the board built from the map text, also for maps the
// validator rejected.
func (r *Result) Board() *board.Board { return r.board }

// Trail returns the walked positions in order.
func (r *Result) Trail() []board.Position {
	return append([]board.Position(nil), r.trail...)
}

// HasErrors reports whether the walk failed.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// Errors returns the error messages.
func (r *Result) Errors() []string {
	msgs := make([]string, 0, len(r.errs))
	for _, err := range r.errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// Err returns the errors joined, or nil on success. The typed failures stay
// reachable with errors.As.
func (r *Result) Err() error {
	return errors.Join(r.errs...)
}

func (r *Result) String() string {
	errs := r.Errors()
	return fmt.Sprintf("fileName: %s\nletters: %s\npath: %s\nerrors: [%s]\n",
		r.name, r.letters, r.path, strings.Join(errs, " "))
}
