package grid

import (
	"fmt"
	"strings"
)

// canonicalRows is the 9×9 maze the visualizer ships with.
var canonicalRows = []string{
	"#S## ####",
	"#       #",
	"# ## ## #",
	"# #   # #",
	"#   # # #",
	"# # # # #",
	"### # ###",
	"#       #",
	"#######E#",
}

// CanonicalRows returns a copy of the built-in maze as symbol rows.
func CanonicalRows() []string {
	out := make([]string, len(canonicalRows))
	copy(out, canonicalRows)
	return out
}

// Canonical returns the built-in 9×9 maze (Start (0,1), Target (8,7)).
func Canonical() *Grid {
	g, err := Parse(canonicalRows)
	if err != nil {
		panic(fmt.Sprintf("grid: canonical layout is invalid: %v", err))
	}
	return g
}

// Parse builds a Grid from symbol rows ('#', 'S', 'E', ' ').
// Returns ErrUnknownSymbol for any other rune, plus every error New returns.
func Parse(rows []string) (*Grid, error) {
	kinds := make([][]Kind, len(rows))
	for r, line := range rows {
		row := make([]Kind, 0, len(line))
		for c, ch := range []rune(line) {
			k, ok := KindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d, %d)", ErrUnknownSymbol, ch, r, c)
			}
			row = append(row, k)
		}
		kinds[r] = row
	}
	return New(kinds)
}

// New constructs a Grid from a non-empty rectangular layout.
// It deep-copies the input, then locates Start and Target.
// Complexity: O(R×C) time and memory.
func New(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	cells := make([][]Kind, h)
	for r, row := range kinds {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = make([]Kind, w)
		copy(cells[r], row)
	}

	g := &Grid{rows: h, cols: w, kinds: cells}
	var err error
	if g.start, err = g.locate(Start, ErrNoStart, ErrMultipleStart); err != nil {
		return nil, err
	}
	if g.target, err = g.locate(Target, ErrNoTarget, ErrMultipleTarget); err != nil {
		return nil, err
	}
	return g, nil
}

// locate scans once for the single cell of kind k.
func (g *Grid) locate(k Kind, errNone, errMany error) (Cell, error) {
	var found []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.kinds[r][c] == k {
				found = append(found, Cell{r, c})
			}
		}
	}
	switch len(found) {
	case 0:
		return Cell{}, errNone
	case 1:
		return found[0], nil
	default:
		return Cell{}, fmt.Errorf("%w: found %d at %v", errMany, len(found), found)
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the memoized Start cell.
func (g *Grid) Start() Cell { return g.start }

// Target returns the memoized Target cell.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// KindAt returns the kind of c, or ErrOutOfBounds.
func (g *Grid) KindAt(c Cell) (Kind, error) {
	if !g.InBounds(c) {
		return Open, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.kinds[c.Row][c.Col], nil
}

// MustKindAt is KindAt for callers that already bounds-checked.
// It panics on an out-of-bounds cell.
func (g *Grid) MustKindAt(c Cell) Kind {
	k, err := g.KindAt(c)
	if err != nil {
		panic(err)
	}
	return k
}

// IsObstacle reports whether c is a wall. c must be in bounds.
func (g *Grid) IsObstacle(c Cell) bool {
	return g.MustKindAt(c) == Obstacle
}

// Passable reports whether c is in bounds and not an obstacle.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.kinds[c.Row][c.Col] != Obstacle
}

// Neighbors returns the in-bounds cells adjacent to c, in the order
// up, down, left, right. Obstacles are included; callers filter them.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{c.Row + d[0], c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Strings returns the layout as symbol rows.
func (g *Grid) Strings() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r, row := range g.kinds {
		b.Reset()
		for _, k := range row {
			b.WriteRune(k.Symbol())
		}
		out[r] = b.String()
	}
	return out
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Strings(), "\n")
}
