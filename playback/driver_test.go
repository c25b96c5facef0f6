package playback_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/bfs"
	"github.com/katalvlaran/mazewalk/dfs"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

// fakeClock fires immediately and records every requested delay.
type fakeClock struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

// never is a clock that never fires.
func never(time.Duration) <-chan time.Time { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newDriver(g *grid.Grid, s *settings.Settings, sink playback.Sink, opts ...playback.Option) *playback.Driver {
	base := []playback.Option{
		playback.WithLogger(quietLogger()),
		playback.WithRunID(func() string { return "run-1" }),
	}
	return playback.New(g, s, sink, append(base, opts...)...)
}

// TestRun_BFSCanonical relays every record in order, waits between
// non-terminal records only, and reports the final path.
func TestRun_BFSCanonical(t *testing.T) {
	g := grid.Canonical()
	clock := &fakeClock{}
	rec := &playback.Recorder{}
	d := newDriver(g, settings.New(), rec, playback.WithClock(clock.After))

	sum, err := d.Run(context.Background(), bfs.New(g))
	require.NoError(t, err)

	frames := rec.Frames()
	require.Len(t, frames, 36)
	for i, f := range frames {
		assert.Equal(t, i+1, f.Record.Step)
		assert.Equal(t, "run-1", f.RunID)
		assert.Same(t, g, f.Grid)
		assert.True(t, f.Settings.ShowStats)
	}
	assert.Len(t, clock.delays, 35)
	for _, dl := range clock.delays {
		assert.Equal(t, 500*time.Millisecond, dl)
	}

	assert.Equal(t, search.Found, sum.Status)
	assert.Equal(t, search.BFS, sum.Algorithm)
	assert.Equal(t, 36, sum.Steps)
	assert.Equal(t, 36, sum.Visited)
	assert.Equal(t, 15, sum.PathLength)
	assert.False(t, sum.Aborted)

	got, ok := rec.Summary()
	require.True(t, ok)
	assert.Equal(t, sum, got)
}

// TestRun_Exhausted reports the exhausted outcome with no path.
func TestRun_Exhausted(t *testing.T) {
	g, err := grid.Parse([]string{"S #", "  #", "##E"})
	require.NoError(t, err)
	rec := &playback.Recorder{}
	d := newDriver(g, settings.New(), rec, playback.WithClock((&fakeClock{}).After))

	sum, err := d.Run(context.Background(), dfs.New(g))
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, sum.Status)
	assert.Equal(t, 5, sum.Steps)
	assert.Equal(t, 0, sum.PathLength)
	assert.True(t, sum.Path.Empty())
}

// TestRun_ReadsSettingsEachStep changes the delay mid-run; the next wait
// uses the new value and the frame carries the new snapshot.
func TestRun_ReadsSettingsEachStep(t *testing.T) {
	g := grid.Canonical()
	s := settings.New()
	clock := &fakeClock{}
	rec := &playback.Recorder{
		OnRender: func(f playback.Frame) {
			if f.Record.Step == 2 {
				require.NoError(t, s.SetDelay(1.5))
				s.ToggleStats()
			}
		},
	}
	d := newDriver(g, s, rec, playback.WithClock(clock.After))
	_, err := d.Run(context.Background(), bfs.New(g))
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, clock.delays[0])
	assert.Equal(t, 500*time.Millisecond, clock.delays[1])
	assert.Equal(t, 1500*time.Millisecond, clock.delays[2])
	frames := rec.Frames()
	assert.True(t, frames[1].Settings.ShowStats)
	assert.False(t, frames[2].Settings.ShowStats)
	assert.Equal(t, 1500*time.Millisecond, frames[2].Settings.Delay)
}

// TestRun_CancelDuringWait aborts while the driver is blocked in a wait that
// would never end on its own.
func TestRun_CancelDuringWait(t *testing.T) {
	g := grid.Canonical()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The first two waits fire; the third blocks until cancelled.
	waits := 0
	clock := func(time.Duration) <-chan time.Time {
		waits++
		if waits > 2 {
			return nil
		}
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}
	rec := &playback.Recorder{
		OnRender: func(f playback.Frame) {
			if f.Record.Step == 3 {
				cancel()
			}
		},
	}
	d := newDriver(g, settings.New(), rec, playback.WithClock(clock))
	st := bfs.New(g)

	done := make(chan struct{})
	var (
		sum playback.Summary
		err error
	)
	go func() {
		sum, err = d.Run(ctx, st)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cancellation did not interrupt the pacing wait")
	}

	assert.ErrorIs(t, err, playback.ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, sum.Aborted)
	assert.Equal(t, search.Continuing, sum.Status)
	assert.Equal(t, 3, sum.Steps)
	assert.Len(t, rec.Frames(), 3)

	got, ok := rec.Summary()
	require.True(t, ok)
	assert.True(t, got.Aborted)

	// The stepper is untouched and resumes at step 4.
	next, ok := st.Next()
	require.True(t, ok)
	assert.Equal(t, 4, next.Step)
}

// TestRun_CancelAtFirstWait aborts while the very first wait is pending.
func TestRun_CancelAtFirstWait(t *testing.T) {
	g := grid.Canonical()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &playback.Recorder{
		OnRender: func(f playback.Frame) {
			if f.Record.Step == 1 {
				cancel()
			}
		},
	}
	st := bfs.New(g)
	sum, err := newDriver(g, settings.New(), rec, playback.WithClock(never)).Run(ctx, st)
	assert.ErrorIs(t, err, playback.ErrAborted)
	assert.Equal(t, 1, sum.Steps)

	next, ok := st.Next()
	require.True(t, ok)
	assert.Equal(t, 2, next.Step)
}

// TestRun_CancelFromAnotherGoroutine cancels with a real timer in flight.
func TestRun_CancelFromAnotherGoroutine(t *testing.T) {
	g := grid.Canonical()
	s, err := settings.FromValues(2.0, true)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	rendered := make(chan struct{}, 64)
	rec := &playback.Recorder{OnRender: func(playback.Frame) { rendered <- struct{}{} }}
	d := newDriver(g, s, rec)

	done := make(chan error, 1)
	go func() {
		_, err := d.Run(ctx, bfs.New(g))
		done <- err
	}()
	<-rendered
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, playback.ErrAborted)
	case <-time.After(time.Second):
		t.Fatal("cancellation did not interrupt the pacing wait")
	}
	assert.Len(t, rec.Frames(), 1)
}

// TestRun_FastForward skips the remaining waits but still renders every record.
func TestRun_FastForward(t *testing.T) {
	g := grid.Canonical()
	var d *playback.Driver
	rec := &playback.Recorder{
		OnRender: func(f playback.Frame) {
			if f.Record.Step == 2 {
				d.FastForward()
			}
		},
	}
	waits := 0
	d = newDriver(g, settings.New(), rec, playback.WithClock(func(time.Duration) <-chan time.Time {
		waits++
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}))

	done := make(chan struct{})
	var sum playback.Summary
	var err error
	go func() {
		sum, err = d.Run(context.Background(), dfs.New(g))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fast-forward did not finish the run")
	}
	require.NoError(t, err)
	assert.Equal(t, 1, waits)
	assert.Len(t, rec.Frames(), 36)
	assert.Equal(t, 17, sum.PathLength)
}

// TestRun_FastForwardBeforeRun honours a press made before Run starts and
// clears it once the run ends.
func TestRun_FastForwardBeforeRun(t *testing.T) {
	g, err := grid.Parse([]string{"S E"})
	require.NoError(t, err)
	clock := &fakeClock{}
	d := newDriver(g, settings.New(), &playback.Recorder{}, playback.WithClock(clock.After))

	d.FastForward()
	_, err = d.Run(context.Background(), bfs.New(g))
	require.NoError(t, err)
	assert.Empty(t, clock.delays)

	_, err = d.Run(context.Background(), bfs.New(g))
	require.NoError(t, err)
	assert.Len(t, clock.delays, 2)
}

// scripted replays fixed records.
type scripted struct {
	recs []search.Record
	i    int
}

func (s *scripted) Algorithm() search.Algorithm { return search.BFS }

func (s *scripted) Next() (search.Record, bool) {
	if s.i >= len(s.recs) {
		return search.Record{}, false
	}
	r := s.recs[s.i]
	s.i++
	return r, true
}

func TestRun_ContractViolations(t *testing.T) {
	g := grid.Canonical()
	clock := playback.WithClock((&fakeClock{}).After)

	d := newDriver(g, settings.New(), &playback.Recorder{}, clock)
	_, err := d.Run(context.Background(), &scripted{recs: []search.Record{{Step: 1}, {Step: 3}}})
	assert.ErrorIs(t, err, playback.ErrOutOfOrder)

	d = newDriver(g, settings.New(), &playback.Recorder{}, clock)
	_, err = d.Run(context.Background(), &scripted{recs: []search.Record{{Step: 1}, {Step: 2}}})
	assert.ErrorIs(t, err, playback.ErrIncomplete)
}

// TestRun_AlreadyCancelled renders nothing.
func TestRun_AlreadyCancelled(t *testing.T) {
	g := grid.Canonical()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &playback.Recorder{}
	sum, err := newDriver(g, settings.New(), rec).Run(ctx, bfs.New(g))
	assert.ErrorIs(t, err, playback.ErrAborted)
	assert.Equal(t, 0, sum.Steps)
	assert.Empty(t, rec.Frames())
}
