package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mazewalk/grid"
)

// Sentinel errors for the search package.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm with no registered Factory.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrInvalidPath is returned by Path.Validate.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Status is the terminal tag of a Record.
type Status int

const (
	// Continuing marks a non-terminal step.
	Continuing Status = iota
	// Found marks the step that reached Target; Record.Final holds the route.
	Found
	// Exhausted marks a run whose frontier emptied without reaching Target.
	Exhausted
)

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool { return s != Continuing }

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Path is an immutable route of cells beginning at Start.
// The zero value is the empty path.
type Path struct {
	cells []grid.Cell
}

// NewPath returns the one-cell path [start].
func NewPath(start grid.Cell) Path {
	return Path{cells: []grid.Cell{start}}
}

// Extend returns a new path with c appended. p is never modified,
// so many frontier entries may share a prefix safely.
func (p Path) Extend(c grid.Cell) Path {
	cells := make([]grid.Cell, len(p.cells), len(p.cells)+1)
	copy(cells, p.cells)
	return Path{cells: append(cells, c)}
}

// Len returns the number of cells.
func (p Path) Len() int { return len(p.cells) }

// Edges returns the number of moves, Len()-1 for a non-empty path.
func (p Path) Edges() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells) - 1
}

// Empty reports whether p has no cells.
func (p Path) Empty() bool { return len(p.cells) == 0 }

// Cells returns a copy of the cells in order.
func (p Path) Cells() []grid.Cell {
	out := make([]grid.Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// At returns the i-th cell.
func (p Path) At(i int) grid.Cell { return p.cells[i] }

// Last returns the final cell and false for an empty path.
func (p Path) Last() (grid.Cell, bool) {
	if len(p.cells) == 0 {
		return grid.Cell{}, false
	}
	return p.cells[len(p.cells)-1], true
}

// Contains reports whether c is on the path. O(len).
func (p Path) Contains(c grid.Cell) bool {
	for _, x := range p.cells {
		if x == c {
			return true
		}
	}
	return false
}

// Set returns the path's cells as a CellSet.
func (p Path) Set() CellSet {
	s := make(CellSet, len(p.cells))
	for _, c := range p.cells {
		s[c] = struct{}{}
	}
	return s
}

// Validate checks that p starts at g's Start, that every step moves to an
// adjacent passable cell, and that no cell repeats.
func (p Path) Validate(g *grid.Grid) error {
	if len(p.cells) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p.cells[0] != g.Start() {
		return fmt.Errorf("%w: begins at %v, not start %v", ErrInvalidPath, p.cells[0], g.Start())
	}
	seen := make(CellSet, len(p.cells))
	for i, c := range p.cells {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v is not passable", ErrInvalidPath, c)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: %v repeats", ErrInvalidPath, c)
		}
		seen[c] = struct{}{}
		if i > 0 && !p.cells[i-1].Adjacent(c) {
			return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidPath, p.cells[i-1], c)
		}
	}
	return nil
}

// String prints the cells joined by arrows.
func (p Path) String() string {
	parts := make([]string, len(p.cells))
	for i, c := range p.cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// CellSet is a set of cells.
type CellSet map[grid.Cell]struct{}

// Has reports membership.
func (s CellSet) Has(c grid.Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c grid.Cell) { s[c] = struct{}{} }

// Len returns the set size.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Superset reports whether every cell of o is in s.
func (s CellSet) Superset(o CellSet) bool {
	for c := range o {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []grid.Cell {
	out := make([]grid.Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Record is the engine state after one expansion.
type Record struct {
	// Algorithm names the strategy that produced the record.
	Algorithm Algorithm
	// Step is 1-based and grows by exactly one per record.
	Step int
	// Current is the cell just expanded. On Exhausted it is the last one expanded.
	Current grid.Cell
	// Path is the route from Start to Current. Empty on Exhausted.
	Path Path
	// Visited is a snapshot of the visited set at emission time.
	Visited CellSet
	// Frontier is the number of pending entries after Current was removed.
	Frontier int
	// Action and Reason narrate the step.
	Action string
	Reason string
	// Status tags the record; Final is set only when Status is Found.
	Status Status
	Final  Path
}

// Terminal reports whether r ends the run.
func (r Record) Terminal() bool { return r.Status.Terminal() }

// Depth is the number of moves from Start to Current.
func (r Record) Depth() int { return r.Path.Edges() }

// Entry is a pending frontier item: a cell and the route that reached it.
type Entry struct {
	Cell grid.Cell
	Path Path
}
