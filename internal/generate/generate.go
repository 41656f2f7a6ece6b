// Package generate draws random valid maps from the solution of a generated maze.
package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vinser/maze"

	"github.com/vinser/asciipath/internal/board"
	"github.com/vinser/asciipath/internal/walk"
)

const (
	DefaultWidth   = 21
	DefaultHeight  = 15
	DefaultLetters = 4

	// The maze library keeps a walled room in its middle; the path goes
	// around it.
	roomWidth  = 3
	roomHeight = 3
	// Generator bias; higher values give twistier solution paths.
	turnBias = 0.2

	minSize     = 7
	maxAttempts = 16
)

// 'X' is left out: an uppercase end marker look-alike is never collected.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWYZ"

// Options describes the map to draw.
type Options struct {
	Seed    int64
	Width   int
	Height  int
	Letters int
}

// Map is a generated map together with what walking it yields.
type Map struct {
	Text    string
	Seed    int64
	Path    string
	Letters string
}

func (o *Options) normalize() error {
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < minSize || o.Height < minSize {
		return fmt.Errorf("map size %dx%d is too small, minimum is %dx%d", o.Width, o.Height, minSize, minSize)
	}
	// Walls sit on even coordinates, so the maze needs odd sides.
	if o.Width%2 == 0 {
		o.Width++
	}
	if o.Height%2 == 0 {
		o.Height++
	}
	if o.Letters < 0 {
		return fmt.Errorf("invalid letters %d, must not be negative", o.Letters)
	}
	return nil
}

// New draws a map. Each attempt is walked; a drawing whose walk does not
// reproduce the maze solution is dropped and the next seed is tried.
func New(opts Options) (*Map, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seed := opts.Seed + int64(attempt)
		m, err := draw(seed, opts)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("seed-%d", seed)
		r := walk.Walk(name, m.Text)
		if !r.HasErrors() && r.Path() == m.Path && r.Letters() == m.Letters {
			return m, nil
		}
		logrus.WithField("seed", seed).Debugf("generated map rejected: path %q, errors %v", r.Path(), r.Errors())
	}
	return nil, errors.Errorf("no walkable map after %d attempts from seed %d", maxAttempts, opts.Seed)
}

func draw(seed int64, opts Options) (*Map, error) {
	mz, err := maze.New(opts.Width, opts.Height, roomWidth, roomHeight)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maze")
	}
	mz.Generate(seed, nil, nil, nil, "top", turnBias)
	solution, ok := mz.Solve()
	if !ok || len(solution) < 2 {
		return nil, errors.Errorf("no solution for width=%d, height=%d, seed=%d", opts.Width, opts.Height, seed)
	}

	grid := make([][]byte, mz.Height())
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", mz.Width()))
	}

	letterAt := letterSlots(len(solution), opts.Letters)
	var path, letters strings.Builder
	for i, p := range solution {
		c := trackChar(solution, i)
		if l, ok := letterAt[i]; ok {
			c = l
			letters.WriteByte(l)
		}
		grid[p.Y][p.X] = c
		path.WriteByte(c)
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	return &Map{
		Text:    strings.Join(rows, "\n") + "\n",
		Seed:    seed,
		Path:    path.String(),
		Letters: letters.String(),
	}, nil
}

// trackChar returns the symbol for the i-th cell of a solution.
func trackChar(solution []maze.Point, i int) byte {
	switch i {
	case 0:
		return board.Start
	case len(solution) - 1:
		return board.End
	}
	prev, next := solution[i-1], solution[i+1]
	switch {
	case prev.X == next.X:
		return board.Vertical
	case prev.Y == next.Y:
		return board.Horizontal
	}
	return board.Crossroads
}

// letterSlots spreads n letters evenly over the inner cells of a solution of
// the given length.
func letterSlots(length, n int) map[int]byte {
	inner := length - 2
	if n > inner {
		n = inner
	}
	slots := make(map[int]byte, n)
	for j := 0; j < n; j++ {
		i := 1 + (j+1)*inner/(n+1)
		slots[i] = alphabet[j%len(alphabet)]
	}
	return slots
}
