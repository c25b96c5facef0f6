package bfs

import "github.com/katalvlaran/mazewalk/grid"

// Option configures a Walker via functional arguments.
type Option func(*Options)

// Options holds the hooks a Walker fires.
type Options struct {
	// OnEnqueue is called once per queued cell with its depth from Start.
	OnEnqueue func(c grid.Cell, depth int)
	// OnDequeue is called when a cell leaves the queue, before its record is built.
	OnDequeue func(c grid.Cell, depth int)
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Cell, int) {},
		OnDequeue: func(grid.Cell, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
