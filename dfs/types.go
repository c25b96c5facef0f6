package dfs

import "github.com/katalvlaran/mazewalk/grid"

// Option configures a Walker.
type Option func(*Options)

// Options holds the hooks a Walker fires. Nil hooks are skipped.
type Options struct {
	// OnPush is invoked for every entry pushed, with its depth from Start.
	OnPush func(c grid.Cell, depth int)
	// OnPop is invoked when a popped cell is marked visited.
	OnPop func(c grid.Cell, depth int)
	// OnSkip is invoked when a popped cell was already visited and is discarded.
	OnSkip func(c grid.Cell)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPush installs fn as the push hook.
func WithOnPush(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithOnPop installs fn as the pop hook.
func WithOnPop(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// WithOnSkip installs fn as the duplicate-discard hook.
func WithOnSkip(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}
