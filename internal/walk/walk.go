// Package walk drives a map from its start marker to its end marker.
package walk

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/failure"
	"github.com/vinser/asciipath/internal/resolve"
	"github.com/vinser/asciipath/internal/result"
	"github.com/vinser/asciipath/internal/validate"
)

type status uint

const (
	statusRunning status = iota
	statusDone
	statusFailed
)

type options struct {
	maxSteps int
}

// Option tunes a walk.
type Option func(*options)

// WithMaxSteps bounds the number of steps. Zero or less picks a bound from
// the board size.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

func defaultMaxSteps(b *board.Board) int {
	return b.Height()*b.Width()*4 + 4
}

// Walk validates text, walks it and returns the Result for the map called name.
func Walk(name, text string, opts ...Option) *result.Result {
	b := board.New(text)
	if err := validate.Validate(name, text); err != nil {
		var errs []error
		if merr, ok := err.(*multierror.Error); ok {
			errs = merr.WrappedErrors()
		} else {
			errs = []error{err}
		}
		logrus.WithField("map", name).Debugf("map rejected: %v", validate.Messages(err))
		return result.New(name, "", "", b, nil, errs...)
	}

	start, _ := b.Find(board.Start)
	t := Traverse(b, start, opts...)

	entry := logrus.WithFields(logrus.Fields{
		"map":     name,
		"steps":   len(t.Path) - 1,
		"letters": t.Letters,
	})
	if t.Err != nil {
		entry.Debugf("walk failed: %v", t.Err)
	} else {
		entry.Debug("walk done")
	}
	return result.New(name, t.Path, t.Letters, b, t.Trail, t.Err)
}

// Trace is what a traversal accumulated. Path and Letters are kept when
// Err is set.
type Trace struct {
	Path    string
	Letters string
	Trail   []board.Position
	Err     error
}

// Traverse walks b from start until it reaches the end marker or no legal
// move is left.
func Traverse(b *board.Board, start board.Position, opts ...Option) Trace {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSteps <= 0 {
		o.maxSteps = defaultMaxSteps(b)
	}

	var path, letters strings.Builder
	path.WriteByte(board.Start)
	visited := board.NewVisited()
	visited.Add(start)
	trail := []board.Position{start}

	var (
		cur   = start
		dir   = resolve.None
		err   error
		steps int
	)
	st := statusRunning
	for st == statusRunning {
		if steps >= o.maxSteps {
			err = &failure.DeadEndError{Pos: cur, Reason: failure.StepLimitExceeded}
			st = statusFailed
			continue
		}
		steps++

		var next board.Position
		next, dir, err = resolve.Resolve(b, cur, dir, visited)
		if err != nil {
			st = statusFailed
			continue
		}

		c, _ := b.Raw(next)
		path.WriteByte(c)
		trail = append(trail, next)
		if !visited.Has(next) && board.IsLetter(c) {
			letters.WriteByte(c)
		}
		if board.IsEnd(c) {
			st = statusDone
			continue
		}
		visited.Add(next)
		cur = next
	}

	return Trace{
		Path:    path.String(),
		Letters: letters.String(),
		Trail:   trail,
		Err:     err,
	}
}
