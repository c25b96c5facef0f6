package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
)

func init() {
	search.Register(search.BFS, func(g *grid.Grid) search.Stepper { return New(g) })
}

// Walker encapsulates mutable BFS state. Build it with New.
type Walker struct {
	grid    *grid.Grid
	opts    Options
	queue   []search.Entry
	visited search.CellSet
	steps   int
	last    grid.Cell
	done    bool
}

// New seeds the queue with (Start, [Start]) and marks Start visited.
func New(g *grid.Grid, opts ...Option) *Walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Walker{
		grid:    g,
		opts:    o,
		queue:   make([]search.Entry, 0, g.PassableCount()),
		visited: make(search.CellSet, g.PassableCount()),
		last:    g.Start(),
	}
	w.enqueue(g.Start(), search.NewPath(g.Start()))
	return w
}

// Algorithm implements search.Stepper.
func (w *Walker) Algorithm() search.Algorithm { return search.BFS }

// Steps returns the number of records emitted so far.
func (w *Walker) Steps() int { return w.steps }

// Next implements search.Stepper.
func (w *Walker) Next() (search.Record, bool) {
	if w.done {
		return search.Record{}, false
	}
	if len(w.queue) == 0 {
		w.done = true
		w.steps++
		return search.Record{
			Algorithm: search.BFS,
			Step:      w.steps,
			Current:   w.last,
			Visited:   w.visited.Clone(),
			Action:    "The queue is empty.",
			Reason:    "Every reachable position was explored without reaching the target.",
			Status:    search.Exhausted,
		}, true
	}

	item := w.dequeue()
	w.steps++
	w.last = item.Cell
	rec := search.Record{
		Algorithm: search.BFS,
		Step:      w.steps,
		Current:   item.Cell,
		Path:      item.Path,
		Visited:   w.visited.Clone(),
		Frontier:  len(w.queue),
		Action:    fmt.Sprintf("Exploring position %v from the front of the queue.", item.Cell),
		Reason:    fmt.Sprintf("BFS explores nodes at the same 'level' before moving deeper (level %d).", item.Path.Edges()),
		Status:    search.Continuing,
	}
	if item.Cell == w.grid.Target() {
		w.done = true
		rec.Status = search.Found
		rec.Final = item.Path
		return rec, true
	}
	w.enqueueNeighbors(item)
	return rec, true
}

// enqueue marks c visited, fires OnEnqueue, and appends it to the queue.
func (w *Walker) enqueue(c grid.Cell, p search.Path) {
	w.visited.Add(c)
	w.opts.OnEnqueue(c, p.Edges())
	w.queue = append(w.queue, search.Entry{Cell: c, Path: p})
}

// dequeue pops the front entry and fires OnDequeue.
func (w *Walker) dequeue() search.Entry {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.Cell, item.Path.Edges())
	return item
}

// enqueueNeighbors queues every unseen passable neighbor in grid order.
func (w *Walker) enqueueNeighbors(item search.Entry) {
	for _, n := range w.grid.Neighbors(item.Cell) {
		if w.visited.Has(n) || w.grid.IsObstacle(n) {
			continue
		}
		w.enqueue(n, item.Path.Extend(n))
	}
}
