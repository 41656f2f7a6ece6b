// Package validate checks map text before any step is taken.
package validate

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/failure"
)

// Validate checks that text holds exactly one start and exactly one end
// marker. Both rules are checked, so up to two errors are returned
// wrapped in a *multierror.Error. A valid map returns nil.
func Validate(name, text string) error {
	var errs *multierror.Error
	if k, bad := count(text, board.Start, failure.NoStart, failure.DoubleStart); bad {
		errs = multierror.Append(errs, &failure.StructuralError{Map: name, Kind: k})
	}
	if k, bad := count(text, board.End, failure.NoEnd, failure.DoubleEnd); bad {
		errs = multierror.Append(errs, &failure.StructuralError{Map: name, Kind: k})
	}
	return errs.ErrorOrNil()
}

func count(text string, marker rune, none, many failure.Kind) (failure.Kind, bool) {
	switch n := strings.Count(text, string(marker)); {
	case n == 0:
		return none, true
	case n > 1:
		return many, true
	}
	return 0, false
}

// Messages flattens err into one message per underlying error.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(merr.Errors))
	for _, e := range merr.WrappedErrors() {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
