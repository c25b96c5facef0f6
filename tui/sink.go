package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/mazewalk/playback"
)

// frameMsg carries one rendered step to the model.
type frameMsg struct{ frame playback.Frame }

// finishMsg carries the run summary.
type finishMsg struct{ summary playback.Summary }

// runDoneMsg is the result of the driver command.
type runDoneMsg struct {
	id  string
	err error
}

// bus hands messages to the running program. It is shared by every copy of
// a Model so the program can be attached after NewProgram.
type bus struct {
	send func(tea.Msg)
}

func (b *bus) dispatch(msg tea.Msg) {
	if b.send != nil {
		b.send(msg)
	}
}

// programSink is the playback.Sink of an interactive run.
type programSink struct {
	bus *bus
}

func (s programSink) Render(f playback.Frame) { s.bus.dispatch(frameMsg{frame: f}) }

func (s programSink) Finish(sum playback.Summary) { s.bus.dispatch(finishMsg{summary: sum}) }
