package tui

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/search"
)

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.menuView()
	case screenSettings:
		body = m.settingsView()
	case screenDelay:
		body = m.settingsView() + "\n\nEnter speed (0.1 = fast, 2.0 = slow): " + m.input.View()
	case screenRunning:
		body = m.runningView()
	case screenFinished:
		body = m.finishedView()
	}
	if m.notice != "" && m.screen != screenRunning && m.screen != screenFinished {
		body += "\n\n" + m.notice
	}
	return render.Clip(body, m.width, m.height)
}

func (m Model) menuView() string {
	st := m.styles
	lines := []string{st.Paint(st.Title, " PATHFINDING ALGORITHMS TUTORIAL "), ""}
	for i, alg := range []search.Algorithm{search.BFS, search.DFS} {
		lines = append(lines,
			st.Paint(st.Info, fmt.Sprintf("%d. %v - %s", i+1, alg, alg.Name())),
			fmt.Sprintf("   (%s)", alg.Blurb()))
	}
	lines = append(lines,
		st.Paint(st.Info, "3. Settings"),
		st.Paint(st.Info, "4. Quit"),
		"",
		"Each algorithm shows step-by-step what it's doing!",
		"",
		"Enter choice (1-4): ")
	return strings.Join(lines, "\n")
}

func (m Model) settingsView() string {
	st := m.styles
	stats := "OFF"
	if m.settings.ShowStats() {
		stats = "ON"
	}
	return strings.Join([]string{
		st.Paint(st.Title, " SETTINGS "),
		"",
		fmt.Sprintf("1. Animation Speed: %.2f seconds", m.settings.Seconds()),
		"   (How fast the algorithms run)",
		fmt.Sprintf("2. Show Statistics: %s", stats),
		"   (Show step counts and details)",
		"",
		"3. Back to main menu",
		"",
		"Enter choice (1-3): ",
	}, "\n")
}

func (m Model) runningView() string {
	st := m.styles
	help := st.Paint(st.Muted, "f fast-forward • esc abort")
	if m.frame == nil {
		name := "search"
		if m.run != nil {
			name = m.run.alg.String()
		}
		return fmt.Sprintf("Running %s...", name) + "\n\n" + help
	}
	if m.run != nil && m.run.aborting {
		help = st.Paint(st.Muted, "aborting...")
	}
	return render.Frame(*m.frame, st) + "\n\n" + help
}

func (m Model) finishedView() string {
	var b strings.Builder
	if m.frame != nil {
		b.WriteString(render.Frame(*m.frame, m.styles))
		b.WriteString("\n\n")
	}
	if m.summary != nil {
		b.WriteString(render.Outcome(*m.summary, m.styles))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Paint(m.styles.Muted, "Press any key to return to the menu."))
	return b.String()
}
