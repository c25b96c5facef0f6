package grid

import "fmt"

// Kind is what occupies a single cell.
type Kind int

const (
	// Open is a free, passable cell.
	Open Kind = iota
	// Obstacle is a wall; never entered.
	Obstacle
	// Start is where every search begins.
	Start
	// Target is the cell searches try to reach.
	Target
)

// Cell symbols, shared with the renderers.
const (
	SymbolOpen     = ' '
	SymbolObstacle = '#'
	SymbolStart    = 'S'
	SymbolTarget   = 'E'
)

// Symbol returns the display rune for k.
func (k Kind) Symbol() rune {
	switch k {
	case Obstacle:
		return SymbolObstacle
	case Start:
		return SymbolStart
	case Target:
		return SymbolTarget
	default:
		return SymbolOpen
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf maps a symbol back to its Kind.
func KindOf(r rune) (Kind, bool) {
	switch r {
	case SymbolOpen:
		return Open, true
	case SymbolObstacle:
		return Obstacle, true
	case SymbolStart:
		return Start, true
	case SymbolTarget:
		return Target, true
	}
	return Open, false
}

// Cell is a (row, column) coordinate. It is comparable and used as node identity.
type Cell struct {
	Row, Col int
}

// String prints the cell as "(r, c)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Adjacent reports whether c and o are at Manhattan distance 1.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// offsets lists neighbor deltas in the canonical order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular maze. Build it with New, Parse or Canonical.
type Grid struct {
	rows, cols int
	kinds      [][]Kind
	start      Cell
	target     Cell
}
