package render

import "github.com/charmbracelet/lipgloss"

// Styles colors each element of a frame.
type Styles struct {
	Current lipgloss.Style
	Visited lipgloss.Style
	Final   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style

	plain bool
}

// Plain returns styles that emit text unchanged.
func Plain() Styles {
	return Styles{plain: true}
}

// Color returns the red/yellow/green/cyan palette of the terminal UI.
func Color() Styles {
	return Styles{
		Current: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Visited: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Final:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Reverse(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// IsPlain reports whether s leaves text unstyled.
func (s Styles) IsPlain() bool { return s.plain }

// Paint applies st unless s is plain.
func (s Styles) Paint(st lipgloss.Style, text string) string {
	if s.plain || text == "" {
		return text
	}
	return st.Render(text)
}
