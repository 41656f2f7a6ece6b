package board

import "fmt"

// Position represents coordinates on the board.
type Position struct {
	Row, Col int
}

// Up returns the position one row above.
func (p Position) Up() Position { return Position{Row: p.Row - 1, Col: p.Col} }

// Down returns the position one row below.
func (p Position) Down() Position { return Position{Row: p.Row + 1, Col: p.Col} }

// Left returns the position one column to the left.
func (p Position) Left() Position { return Position{Row: p.Row, Col: p.Col - 1} }

// Right returns the position one column to the right.
func (p Position) Right() Position { return Position{Row: p.Row, Col: p.Col + 1} }

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
