package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
)

func init() {
	search.Register(search.DFS, func(g *grid.Grid) search.Stepper { return New(g) })
}

// Walker encapsulates state during DFS.
type Walker struct {
	grid    *grid.Grid     // underlying maze
	opts    Options        // hooks
	stack   []search.Entry // pending entries, top at the end
	visited search.CellSet // marked at pop time
	steps   int            // records emitted
	skipped int            // duplicate entries discarded
	last    grid.Cell      // most recently expanded cell
	done    bool
}

// New seeds the stack with (Start, [Start]); the visited set starts empty.
func New(g *grid.Grid, opts ...Option) *Walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Walker{
		grid:    g,
		opts:    o,
		visited: make(search.CellSet, g.PassableCount()),
		last:    g.Start(),
	}
	w.push(g.Start(), search.NewPath(g.Start()))
	return w
}

// Algorithm implements search.Stepper.
func (w *Walker) Algorithm() search.Algorithm { return search.DFS }

// Steps returns the number of records emitted so far.
func (w *Walker) Steps() int { return w.steps }

// Skipped returns how many already-visited entries were discarded.
func (w *Walker) Skipped() int { return w.skipped }

// Next implements search.Stepper.
func (w *Walker) Next() (search.Record, bool) {
	if w.done {
		return search.Record{}, false
	}

	// 1. Pop until an unvisited entry surfaces.
	var item search.Entry
	for {
		if len(w.stack) == 0 {
			w.done = true
			w.steps++
			return search.Record{
				Algorithm: search.DFS,
				Step:      w.steps,
				Current:   w.last,
				Visited:   w.visited.Clone(),
				Action:    "The stack is empty.",
				Reason:    "Every reachable position was explored without reaching the target.",
				Status:    search.Exhausted,
			}, true
		}
		item = w.pop()
		if !w.visited.Has(item.Cell) {
			break
		}
		w.skipped++
		if w.opts.OnSkip != nil {
			w.opts.OnSkip(item.Cell)
		}
	}

	// 2. Mark visited at pop time and emit.
	w.visited.Add(item.Cell)
	if w.opts.OnPop != nil {
		w.opts.OnPop(item.Cell, item.Path.Edges())
	}
	w.steps++
	w.last = item.Cell
	rec := search.Record{
		Algorithm: search.DFS,
		Step:      w.steps,
		Current:   item.Cell,
		Path:      item.Path,
		Visited:   w.visited.Clone(),
		Frontier:  len(w.stack),
		Action:    fmt.Sprintf("Exploring position %v from the top of the stack.", item.Cell),
		Reason:    fmt.Sprintf("DFS goes as deep as possible first before backtracking (depth %d).", item.Path.Edges()),
		Status:    search.Continuing,
	}
	if item.Cell == w.grid.Target() {
		w.done = true
		rec.Status = search.Found
		rec.Final = item.Path
		return rec, true
	}

	// 3. Push neighbors in reverse order so they pop up, down, left, right.
	nbs := w.grid.Neighbors(item.Cell)
	for i := len(nbs) - 1; i >= 0; i-- {
		n := nbs[i]
		if w.visited.Has(n) || w.grid.IsObstacle(n) {
			continue
		}
		w.push(n, item.Path.Extend(n))
	}
	return rec, true
}

func (w *Walker) push(c grid.Cell, p search.Path) {
	if w.opts.OnPush != nil {
		w.opts.OnPush(c, p.Edges())
	}
	w.stack = append(w.stack, search.Entry{Cell: c, Path: p})
}

func (w *Walker) pop() search.Entry {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return top
}
