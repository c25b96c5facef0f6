package render_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/bfs"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

func sealed(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse([]string{"S #", "  #", "##E"})
	require.NoError(t, err)
	return g
}

// TestGrid_MidRun layers the current path and the visited set.
func TestGrid_MidRun(t *testing.T) {
	g := sealed(t)
	w := bfs.New(g)
	w.Next()
	rec, _ := w.Next()

	want := "S . #\n\nS   #\n\n# # E"
	assert.Equal(t, want, render.Grid(g, rec, render.Plain()))
}

// TestGrid_Found replaces the current path with the final one.
func TestGrid_Found(t *testing.T) {
	g := grid.Canonical()
	recs := search.Collect(bfs.New(g))
	last := recs[len(recs)-1]

	out := render.Grid(g, last, render.Plain())
	assert.Equal(t, 15, strings.Count(out, "*"))
	assert.Equal(t, 0, strings.Count(out, "S"))
	assert.Equal(t, 0, strings.Count(out, "E"))
	assert.Equal(t, 2*g.Rows()-1, len(strings.Split(out, "\n")))
}

// TestFrame_StatsToggle omits the statistics block when it is switched off.
func TestFrame_StatsToggle(t *testing.T) {
	g := grid.Canonical()
	rec, _ := bfs.New(g).Next()
	f := playback.Frame{Record: rec, Grid: g, Settings: settings.View{ShowStats: true}}

	on := render.Frame(f, render.Plain())
	assert.Contains(t, on, "STATISTICS:")
	assert.Contains(t, on, "Steps taken: 1")
	assert.Contains(t, on, "Queue/Stack size: 0")
	assert.Contains(t, on, "LEGEND:")
	assert.Contains(t, on, "• Uses a QUEUE (First In, First Out)")
	assert.Contains(t, on, "Currently exploring all positions at level 0 from start.")
	assert.Contains(t, on, "STEP 1:")
	assert.Contains(t, on, "Exploring position (0, 1) from the front of the queue.")

	f.Settings.ShowStats = false
	off := render.Frame(f, render.Plain())
	assert.NotContains(t, off, "STATISTICS:")
	assert.Contains(t, off, "STEP 1:")
}

func TestStats_FinalPathLength(t *testing.T) {
	recs := search.Collect(bfs.New(grid.Canonical()))
	out := render.Stats(recs[len(recs)-1], true, render.Plain())
	assert.Contains(t, out, "Final path length: 15")
	assert.NotContains(t, render.Stats(recs[0], true, render.Plain()), "Final path length")
	assert.Empty(t, render.Stats(recs[0], false, render.Plain()))
}

func TestOutcome(t *testing.T) {
	st := render.Plain()
	assert.Equal(t, "BFS found the SHORTEST path! Path length: 15.",
		render.Outcome(playback.Summary{Algorithm: search.BFS, Status: search.Found, PathLength: 15}, st))
	assert.Equal(t, "DFS: No path found!",
		render.Outcome(playback.Summary{Algorithm: search.DFS, Status: search.Exhausted}, st))
	assert.Equal(t, "BFS run aborted after 3 steps.",
		render.Outcome(playback.Summary{Algorithm: search.BFS, Steps: 3, Aborted: true}, st))
}

// TestClip keeps output inside a small display.
func TestClip(t *testing.T) {
	g := grid.Canonical()
	rec, _ := bfs.New(g).Next()
	full := render.Frame(playback.Frame{Record: rec, Grid: g, Settings: settings.View{ShowStats: true}}, render.Plain())

	clipped := render.Clip(full, 10, 5)
	lines := strings.Split(clipped, "\n")
	assert.LessOrEqual(t, len(lines), 5)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 10)
	}
	assert.Equal(t, full, render.Clip(full, 0, 0))
}

func TestStyles(t *testing.T) {
	assert.True(t, render.Plain().IsPlain())
	assert.False(t, render.Color().IsPlain())
	assert.Equal(t, "x", render.Plain().Paint(lipgloss.NewStyle().Bold(true), "x"))
	assert.Empty(t, render.Color().Paint(lipgloss.NewStyle().Bold(true), ""))
}
