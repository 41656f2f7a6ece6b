// Package failure holds the errors a map walk can end with.
package failure

import (
	"fmt"

	"github.com/vinser/asciipath/internal/board"
)

// Kind identifies which structural rule a map broke.
type Kind int

const (
	NoStart Kind = iota
	DoubleStart
	NoEnd
	DoubleEnd
)

func (k Kind) String() string {
	switch k {
	case NoStart:
		return fmt.Sprintf("no start position %c", board.Start)
	case DoubleStart:
		return fmt.Sprintf("double start %c", board.Start)
	case NoEnd:
		return fmt.Sprintf("no end position %c", board.End)
	case DoubleEnd:
		return fmt.Sprintf("double end %c", board.End)
	}
	return "unknown"
}

// StructuralError reports a missing or repeated start or end marker.
// It is always raised before the first step.
type StructuralError struct {
	Map  string
	Kind Kind
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid map %q: %s", e.Map, e.Kind)
}

// ForkMessage is the text of every ForkError.
const ForkMessage = "T-fork multiple directions available"

// ForkError reports a crossroads whose opposite neighbours look the same.
type ForkError struct {
	Pos board.Position
}

func (e *ForkError) Error() string {
	return ForkMessage
}

// Dead end reasons.
const (
	NoMorePositions      = "No more available positions"
	NoAvailablePositions = "No available positions to move!"
	StepLimitExceeded    = "step limit exceeded"
)

// DeadEndError reports that no legal move exists from Pos.
type DeadEndError struct {
	Pos    board.Position
	Reason string
}

func (e *DeadEndError) Error() string {
	return e.Reason
}
