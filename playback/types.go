package playback

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

var (
	// ErrAborted is returned by Run when its context is cancelled mid-run.
	ErrAborted = errors.New("playback: run aborted")
	// ErrOutOfOrder is returned when a stepper skips or repeats a step number.
	ErrOutOfOrder = errors.New("playback: step records out of order")
	// ErrIncomplete is returned when a stepper stops without a terminal record.
	ErrIncomplete = errors.New("playback: stepper ended without a terminal record")
)

// Sink receives everything a run produces. Render is called once per
// record in step order; Finish is called exactly once at the end.
// Implementations must not retain the Frame's Grid for mutation.
type Sink interface {
	Render(f Frame)
	Finish(s Summary)
}

// Frame is one renderable step.
type Frame struct {
	RunID    string
	Record   search.Record
	Grid     *grid.Grid
	Settings settings.View
}

// Summary describes a finished or aborted run.
type Summary struct {
	RunID      string
	Algorithm  search.Algorithm
	Status     search.Status // Continuing when Aborted
	Steps      int
	Visited    int
	Path       search.Path
	PathLength int // cells on the found path, 0 otherwise
	Aborted    bool
	Elapsed    time.Duration
}

// Option configures a Driver.
type Option func(*Options)

// Options holds the Driver's collaborators.
type Options struct {
	// After returns a channel that fires once d has elapsed.
	After func(d time.Duration) <-chan time.Time
	// Logger receives run lifecycle events.
	Logger *slog.Logger
	// RunID mints an identifier per Run.
	RunID func() string
}

// DefaultOptions uses the wall clock, slog.Default and random UUIDs.
func DefaultOptions() Options {
	return Options{
		After:  time.After,
		Logger: slog.Default(),
		RunID:  uuid.NewString,
	}
}

// WithClock replaces the pacing timer, mostly for tests.
func WithClock(after func(d time.Duration) <-chan time.Time) Option {
	return func(o *Options) {
		if after != nil {
			o.After = after
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID sets the run identifier generator.
func WithRunID(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.RunID = fn
		}
	}
}
