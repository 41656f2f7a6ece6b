package board

// Visited records positions in the order they were walked.
// It only grows.
type Visited struct {
	order []Position
	seen  map[Position]struct{}
}

// NewVisited returns an empty history.
func NewVisited() *Visited {
	return &Visited{seen: make(map[Position]struct{})}
}

// Add appends p. Adding a known position again is a no-op.
func (v *Visited) Add(p Position) {
	if _, ok := v.seen[p]; ok {
		return
	}
	v.seen[p] = struct{}{}
	v.order = append(v.order, p)
}

// Has reports whether p was visited.
func (v *Visited) Has(p Position) bool {
	if v == nil {
		return false
	}
	_, ok := v.seen[p]
	return ok
}

// Len returns the number of distinct visited positions.
func (v *Visited) Len() int {
	return len(v.order)
}

// Positions returns a copy of the history in visiting order.
func (v *Visited) Positions() []Position {
	out := make([]Position, len(v.order))
	copy(out, v.order)
	return out
}
