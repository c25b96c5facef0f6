package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/search"
)

// Display symbols layered over the grid.
const (
	SymbolCurrent = 'S'
	SymbolVisited = '.'
	SymbolFinal   = '*'
)

// Grid draws g with rec's state layered on top. A Found record shows its
// final path instead of the current one.
func Grid(g *grid.Grid, rec search.Record, st Styles) string {
	var final, current search.CellSet
	if rec.Status == search.Found {
		final = rec.Final.Set()
	} else {
		current = rec.Path.Set()
	}

	rows := make([]string, g.Rows())
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		b.Reset()
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := grid.Cell{Row: r, Col: c}
			switch {
			case final.Has(cell):
				b.WriteString(st.Paint(st.Final, string(SymbolFinal)))
			case current.Has(cell):
				b.WriteString(st.Paint(st.Current, string(SymbolCurrent)))
			case rec.Visited.Has(cell):
				b.WriteString(st.Paint(st.Visited, string(SymbolVisited)))
			default:
				b.WriteRune(g.MustKindAt(cell).Symbol())
			}
		}
		rows[r] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n\n")
}

// Legend explains the symbols.
func Legend(st Styles) string {
	lines := []string{
		st.Paint(st.Info, "LEGEND:"),
		st.Paint(st.Current, fmt.Sprintf("%c = Current position", SymbolCurrent)),
		st.Paint(st.Visited, fmt.Sprintf("%c = Already visited", SymbolVisited)),
		st.Paint(st.Final, fmt.Sprintf("%c = Final path", SymbolFinal)),
		st.Paint(st.Info, fmt.Sprintf("%c = Obstacle  %c = Target", grid.SymbolObstacle, grid.SymbolTarget)),
	}
	return strings.Join(lines, "\n")
}

// Guide prints the algorithm's four facts and how deep rec is.
func Guide(rec search.Record, st Styles) string {
	facts := rec.Algorithm.Facts()
	lines := make([]string, 0, len(facts)+1)
	for _, f := range facts {
		if f != "" {
			lines = append(lines, st.Paint(st.Info, f))
		}
	}
	if p := rec.Algorithm.Progress(rec); p != "" {
		lines = append(lines, st.Paint(st.Info, p))
	}
	return strings.Join(lines, "\n")
}

// Stats prints the counters. It returns "" when statistics are off.
func Stats(rec search.Record, showStats bool, st Styles) string {
	if !showStats {
		return ""
	}
	lines := []string{
		"STATISTICS:",
		fmt.Sprintf("Steps taken: %d", rec.Step),
		fmt.Sprintf("Positions visited: %d", rec.Visited.Len()),
		fmt.Sprintf("Queue/Stack size: %d", rec.Frontier),
	}
	if rec.Status == search.Found {
		lines = append(lines, fmt.Sprintf("Final path length: %d", rec.Final.Len()))
	}
	for i := range lines {
		lines[i] = st.Paint(st.Info, lines[i])
	}
	return strings.Join(lines, "\n")
}

// Explanation narrates the step.
func Explanation(rec search.Record, st Styles) string {
	return strings.Join([]string{
		st.Paint(st.Info, fmt.Sprintf("STEP %d:", rec.Step)),
		st.Paint(st.Info, rec.Action),
		st.Paint(st.Info, rec.Reason),
	}, "\n")
}

// Frame composes grid, legend, guide, statistics and explanation.
func Frame(f playback.Frame, st Styles) string {
	parts := []string{
		Grid(f.Grid, f.Record, st),
		Legend(st),
		Guide(f.Record, st),
	}
	if s := Stats(f.Record, f.Settings.ShowStats, st); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, Explanation(f.Record, st))
	return strings.Join(parts, "\n\n")
}

// Outcome is the closing line of a run.
func Outcome(s playback.Summary, st Styles) string {
	switch {
	case s.Aborted:
		return st.Paint(st.Failure, fmt.Sprintf("%v run aborted after %d steps.", s.Algorithm, s.Steps))
	case s.Status == search.Found:
		return st.Paint(st.Success, fmt.Sprintf("%s Path length: %d.", s.Algorithm.Outcome(s.Status), s.PathLength))
	default:
		return st.Paint(st.Failure, s.Algorithm.Outcome(s.Status))
	}
}

// Clip truncates s to at most width columns and height rows, without
// breaking ANSI sequences. Non-positive bounds leave that axis alone.
func Clip(s string, width, height int) string {
	st := lipgloss.NewStyle()
	if width > 0 {
		st = st.MaxWidth(width)
	}
	if height > 0 {
		st = st.MaxHeight(height)
	}
	if width <= 0 && height <= 0 {
		return s
	}
	return st.Render(s)
}
