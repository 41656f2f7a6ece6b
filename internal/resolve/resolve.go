// Package resolve decides the single legal next move on a board.
package resolve

import (
	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/failure"
)

// Resolve returns the next position and the direction to carry into the
// following step. With dir == None the move is discovered from scratch;
// otherwise the walk keeps going straight while it can.
//
// The returned direction is None whenever the new position is a crossroads.
func Resolve(b *board.Board, cur board.Position, dir Direction, visited *board.Visited) (board.Position, Direction, error) {
	around := Around(b, cur)

	var (
		next board.Position
		err  error
	)
	if dir == None {
		next, dir, err = discover(b, cur, around, visited)
	} else {
		next, dir, err = keep(cur, dir, around, visited)
	}
	if err != nil {
		return cur, None, err
	}

	if c, _ := b.Raw(next); board.IsCrossroads(c) {
		dir = None
	}
	return next, dir, nil
}

// discover picks a direction where none is committed.
func discover(b *board.Board, cur board.Position, around Neighbours, visited *board.Visited) (board.Position, Direction, error) {
	if c, _ := b.Raw(cur); board.IsCrossroads(c) && isFork(around) {
		return cur, None, &failure.ForkError{Pos: cur}
	}
	if nb, ok := firstUnvisited(around, visited); ok {
		return nb.Pos, nb.Dir, nil
	}
	// A closed loop: walk back over a letter already seen.
	if nb, ok := lastLetter(around); ok {
		return nb.Pos, nb.Dir, nil
	}
	return cur, None, &failure.DeadEndError{Pos: cur, Reason: failure.NoMorePositions}
}

// keep continues in dir, falling back to a fresh choice at a blind street.
func keep(cur board.Position, dir Direction, around Neighbours, visited *board.Visited) (board.Position, Direction, error) {
	if nb := around.Get(dir); nb.Present {
		return nb.Pos, dir, nil
	}
	if nb, ok := firstUnvisited(around, visited); ok {
		return nb.Pos, nb.Dir, nil
	}
	return cur, None, &failure.DeadEndError{Pos: cur, Reason: failure.NoAvailablePositions}
}

// isFork reports whether both vertical or both horizontal neighbours are
// present and carry the same character.
func isFork(n Neighbours) bool {
	same := func(a, b Neighbour) bool {
		return a.Present && b.Present && a.Char == b.Char
	}
	return same(n.Get(Up), n.Get(Down)) || same(n.Get(Left), n.Get(Right))
}

func firstUnvisited(n Neighbours, visited *board.Visited) (Neighbour, bool) {
	for _, nb := range n {
		if nb.Present && !visited.Has(nb.Pos) {
			return nb, true
		}
	}
	return Neighbour{}, false
}

func lastLetter(n Neighbours) (Neighbour, bool) {
	var (
		found Neighbour
		ok    bool
	)
	for _, nb := range n {
		if nb.Present && board.IsLetter(nb.Char) {
			found, ok = nb, true
		}
	}
	return found, ok
}
