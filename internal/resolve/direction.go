package resolve

import "github.com/vinser/asciipath/internal/board"

// Direction represents movement direction.
type Direction int

const (
	None Direction = iota
	Down
	Up
	Left
	Right
)

// priority is the fixed tie-break order for choosing a neighbour.
var priority = [4]Direction{Down, Up, Left, Right}

func (d Direction) String() string {
	switch d {
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "NONE"
}

// Step returns the position one move from p in direction d.
func (d Direction) Step(p board.Position) board.Position {
	switch d {
	case Down:
		return p.Down()
	case Up:
		return p.Up()
	case Left:
		return p.Left()
	case Right:
		return p.Right()
	}
	return p
}

// Neighbour is one orthogonal option around a position.
type Neighbour struct {
	Dir     Direction
	Pos     board.Position
	Char    byte
	Present bool
}

// Neighbours holds the four options in priority order: down, up, left, right.
type Neighbours [4]Neighbour

// Around looks at the four neighbours of p. A slot is present only when its
// character is a legal path character.
func Around(b *board.Board, p board.Position) Neighbours {
	var n Neighbours
	for i, d := range priority {
		pos := d.Step(p)
		c, ok := b.CharAt(pos)
		n[i] = Neighbour{Dir: d, Pos: pos, Char: c, Present: ok}
	}
	return n
}

// Get returns the slot for direction d.
func (n Neighbours) Get(d Direction) Neighbour {
	for _, nb := range n {
		if nb.Dir == d {
			return nb
		}
	}
	return Neighbour{Dir: d}
}
