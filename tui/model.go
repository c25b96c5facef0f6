package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	_ "github.com/katalvlaran/mazewalk/bfs"
	_ "github.com/katalvlaran/mazewalk/dfs"
	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/search"
	"github.com/katalvlaran/mazewalk/settings"
)

// screen is the visible page.
type screen int

const (
	screenMenu screen = iota
	screenSettings
	screenDelay
	screenRunning
	screenFinished
)

// activeRun tracks the driver goroutine of the current run.
type activeRun struct {
	id       string
	alg      search.Algorithm
	driver   *playback.Driver
	cancel   context.CancelFunc
	aborting bool
	quit     bool
}

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces the colour styles.
func WithStyles(st render.Styles) Option {
	return func(m *Model) { m.styles = st }
}

// WithLogger sets the logger handed to every playback run.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayback appends driver options, e.g. playback.WithClock.
func WithPlayback(opts ...playback.Option) Option {
	return func(m *Model) { m.playback = append(m.playback, opts...) }
}

// Model is the bubbletea model.
type Model struct {
	grid     *grid.Grid
	settings *settings.Settings
	styles   render.Styles
	logger   *slog.Logger
	playback []playback.Option
	bus      *bus

	screen screen
	input  textinput.Model
	notice string
	width  int
	height int

	run     *activeRun
	frame   *playback.Frame
	summary *playback.Summary
}

// New builds a Model over g. s is shared with every run and edited by
// the settings screen.
func New(g *grid.Grid, s *settings.Settings, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "0.5"
	ti.CharLimit = 5
	ti.Width = 8
	ti.Prompt = ""

	m := Model{
		grid:     g,
		settings: s,
		styles:   render.Color(),
		logger:   slog.Default(),
		bus:      &bus{},
		input:    ti,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		if m.owns(msg.frame.RunID) && !m.run.aborting {
			f := msg.frame
			m.frame = &f
		}
		return m, nil

	case finishMsg:
		if !m.owns(msg.summary.RunID) {
			return m, nil
		}
		sum := msg.summary
		m.summary = &sum
		if m.run.quit {
			return m, tea.Quit
		}
		if sum.Aborted {
			m.screen = screenMenu
			m.notice = render.Outcome(sum, m.styles)
			m.frame = nil
		} else {
			m.screen = screenFinished
		}
		return m, nil

	case runDoneMsg:
		if !m.owns(msg.id) {
			return m, nil
		}
		if msg.err != nil && !errors.Is(msg.err, playback.ErrAborted) {
			m.logger.Error("playback failed", "run_id", msg.id, "err", msg.err)
			m.screen = screenMenu
			m.notice = m.styles.Paint(m.styles.Failure, fmt.Sprintf("Playback failed: %v", msg.err))
		}
		m.run = nil
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.running() {
				m.run.quit = true
				m.abort()
				return m, nil
			}
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenSettings:
			return m.updateSettings(msg)
		case screenDelay:
			return m.updateDelay(msg)
		case screenRunning:
			return m.updateRunning(msg)
		case screenFinished:
			m.screen = screenMenu
			m.frame = nil
			m.summary = nil
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choice, err := ParseChoice(msg.String())
	if err != nil {
		m.notice = m.styles.Paint(m.styles.Failure, "Invalid choice! Please enter 1-4.")
		return m, nil
	}
	m.notice = ""
	switch choice {
	case RunBFS, RunDFS:
		alg, _ := choice.Algorithm()
		return m.start(alg)
	case OpenSettings:
		m.screen = screenSettings
	case Quit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edit, err := ParseSettingsEdit(msg.String())
	if err != nil {
		m.notice = m.styles.Paint(m.styles.Failure, "Invalid choice! Please enter 1-3.")
		return m, nil
	}
	m.notice = ""
	switch edit {
	case SetDelay:
		m.screen = screenDelay
		m.input.Reset()
		return m, m.input.Focus()
	case ToggleStats:
		m.settings.ToggleStats()
	case Back:
		m.screen = screenMenu
	}
	return m, nil
}

func (m Model) updateDelay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenSettings
		m.notice = ""
		return m, nil
	case tea.KeyEnter:
		err := m.settings.ParseDelay(m.input.Value())
		m.input.Reset()
		switch {
		case errors.Is(err, settings.ErrNotNumeric):
			m.notice = m.styles.Paint(m.styles.Failure, "Invalid input!")
			return m, nil
		case errors.Is(err, settings.ErrInvalidDelay):
			m.notice = m.styles.Paint(m.styles.Failure, "Please enter between 0.1 and 2.0")
			return m, nil
		case err != nil:
			m.notice = m.styles.Paint(m.styles.Failure, err.Error())
			return m, nil
		}
		m.input.Blur()
		m.screen = screenSettings
		m.notice = m.styles.Paint(m.styles.Success,
			fmt.Sprintf("Animation speed set to %.2f seconds", m.settings.Seconds()))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.running() {
		return m, nil
	}
	switch msg.String() {
	case "f":
		m.run.driver.FastForward()
	case "esc", "q":
		m.abort()
	}
	return m, nil
}

// start launches alg in a command goroutine.
func (m Model) start(alg search.Algorithm) (tea.Model, tea.Cmd) {
	st, err := search.New(alg, m.grid)
	if err != nil {
		m.notice = m.styles.Paint(m.styles.Failure, err.Error())
		return m, nil
	}

	id := uuid.NewString()
	opts := make([]playback.Option, 0, len(m.playback)+2)
	opts = append(opts, playback.WithLogger(m.logger), playback.WithRunID(func() string { return id }))
	opts = append(opts, m.playback...)

	ctx, cancel := context.WithCancel(context.Background())
	d := playback.New(m.grid, m.settings, programSink{bus: m.bus}, opts...)
	m.run = &activeRun{id: id, alg: alg, driver: d, cancel: cancel}
	m.screen = screenRunning
	m.frame = nil
	m.summary = nil

	return m, func() tea.Msg {
		defer cancel()
		_, err := d.Run(ctx, st)
		return runDoneMsg{id: id, err: err}
	}
}

func (m Model) abort() {
	if m.run == nil || m.run.aborting {
		return
	}
	m.run.aborting = true
	m.run.cancel()
}

func (m Model) running() bool {
	return m.run != nil && m.screen == screenRunning
}

func (m Model) owns(runID string) bool {
	return m.run != nil && m.run.id == runID
}
