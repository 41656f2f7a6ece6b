package board

import "strings"

// Map symbols.
const (
	Start      = '@'
	End        = 'x'
	Crossroads = '+'
	Horizontal = '-'
	Vertical   = '|'
	Blank      = ' '
)

// Board is an immutable grid of characters parsed from map text.
// Rows may have different lengths.
type Board struct {
	rows  [][]byte
	width int
}

// New splits text on line breaks and each line into characters.
func New(text string) *Board {
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	width := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		rows[i] = []byte(line)
		if len(line) > width {
			width = len(line)
		}
	}
	return &Board{rows: rows, width: width}
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return len(b.rows)
}

// Width returns the length of the longest row.
func (b *Board) Width() int {
	return b.width
}

// Rows returns a copy of the board lines.
func (b *Board) Rows() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = string(r)
	}
	return out
}

// Raw returns the character at p without filtering.
// ok is false when p lies outside the grid.
func (b *Board) Raw(p Position) (byte, bool) {
	if p.Row < 0 || p.Row >= len(b.rows) {
		return 0, false
	}
	row := b.rows[p.Row]
	if p.Col < 0 || p.Col >= len(row) {
		return 0, false
	}
	return row[p.Col], true
}

// CharAt returns the character at p if it is a legal path character.
// Off the map and not walkable are the same outcome: ok is false.
func (b *Board) CharAt(p Position) (byte, bool) {
	c, ok := b.Raw(p)
	if !ok || !IsPath(c) {
		return 0, false
	}
	return c, true
}

// Find returns the first position holding c in row-major order.
func (b *Board) Find(c byte) (Position, bool) {
	for r, row := range b.rows {
		for col, ch := range row {
			if ch == c {
				return Position{Row: r, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// IsPath reports whether c can be stepped onto: '-', '|', '+' or any letter.
func IsPath(c byte) bool {
	return c == Horizontal || c == Vertical || c == Crossroads || isASCIILetter(c)
}

// IsLetter reports whether c is a collectable letter. The end marker never is,
// in either case.
func IsLetter(c byte) bool {
	return isASCIILetter(c) && c != 'x' && c != 'X'
}

// IsCrossroads reports whether c forces a new direction decision.
func IsCrossroads(c byte) bool {
	return c == Crossroads
}

// IsEnd reports whether c is the end marker.
func IsEnd(c byte) bool {
	return c == End
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
