package playback

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

// Driver relays records from a Stepper to a Sink at the configured pace.
type Driver struct {
	grid     *grid.Grid
	settings *settings.Settings
	sink     Sink
	opts     Options

	fast atomic.Bool
	wake chan struct{}
}

// New builds a Driver. s is read before every wait and never written.
func New(g *grid.Grid, s *settings.Settings, sink Sink, opts ...Option) *Driver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		grid:     g,
		settings: s,
		sink:     sink,
		opts:     o,
		wake:     make(chan struct{}, 1),
	}
}

// FastForward drops the delay for the rest of the current run, or for the
// next run when none is in progress. Safe to call from any goroutine.
func (d *Driver) FastForward() {
	d.fast.Store(true)
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run drives st to its terminal record.
//
// Behavior:
//  1. Pull the next record; its step must be the previous one plus one.
//  2. Render it with a fresh settings snapshot.
//  3. Terminal: Finish with the summary and return.
//  4. Otherwise wait the delay, or less on FastForward, then repeat.
//
// A cancelled ctx ends the run with ErrAborted; Finish still runs with
// Summary.Aborted set. The stepper is left as is. Fast-forward is cleared
// when Run returns.
func (d *Driver) Run(ctx context.Context, st search.Stepper) (Summary, error) {
	defer d.clearFastForward()

	began := time.Now()
	sum := Summary{RunID: d.opts.RunID(), Algorithm: st.Algorithm()}
	log := d.opts.Logger.With("run_id", sum.RunID, "algorithm", sum.Algorithm.String())
	log.Info("playback started", "delay", d.settings.Delay())

	for {
		if err := ctx.Err(); err != nil {
			return d.abort(sum, began, err)
		}

		rec, ok := st.Next()
		if !ok {
			log.Error("stepper ended early", "steps", sum.Steps)
			return sum, fmt.Errorf("%w: after step %d", ErrIncomplete, sum.Steps)
		}
		if rec.Step != sum.Steps+1 {
			log.Error("step out of order", "got", rec.Step, "want", sum.Steps+1)
			return sum, fmt.Errorf("%w: got step %d after %d", ErrOutOfOrder, rec.Step, sum.Steps)
		}
		sum.Steps = rec.Step
		sum.Visited = rec.Visited.Len()

		view := d.settings.Snapshot()
		d.sink.Render(Frame{RunID: sum.RunID, Record: rec, Grid: d.grid, Settings: view})

		if rec.Terminal() {
			sum.Status = rec.Status
			if rec.Status == search.Found {
				sum.Path = rec.Final
				sum.PathLength = rec.Final.Len()
			}
			sum.Elapsed = time.Since(began)
			d.sink.Finish(sum)
			log.Info("playback finished",
				"status", sum.Status.String(),
				"steps", sum.Steps,
				"visited", sum.Visited,
				"path_length", sum.PathLength)
			return sum, nil
		}

		if err := d.wait(ctx, view.Delay); err != nil {
			return d.abort(sum, began, err)
		}
	}
}

func (d *Driver) clearFastForward() {
	d.fast.Store(false)
	select {
	case <-d.wake:
	default:
	}
}

// wait blocks for delay, or until FastForward or ctx cancellation.
func (d *Driver) wait(ctx context.Context, delay time.Duration) error {
	if d.fast.Load() || delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.wake:
		return nil
	case <-d.opts.After(delay):
		return nil
	}
}

func (d *Driver) abort(sum Summary, began time.Time, cause error) (Summary, error) {
	sum.Aborted = true
	sum.Elapsed = time.Since(began)
	d.sink.Finish(sum)
	d.opts.Logger.Info("playback aborted",
		"run_id", sum.RunID,
		"algorithm", sum.Algorithm.String(),
		"steps", sum.Steps)
	return sum, fmt.Errorf("%w: %w", ErrAborted, cause)
}
