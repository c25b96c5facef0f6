// Package textsink is a playback.Sink that writes plain text frames to an
// io.Writer. The CLI uses it when stdout is not a terminal and for the
// headless run command.
package textsink

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazewalk/playback"
	"github.com/katalvlaran/mazewalk/render"
)

// Separator is written after every frame.
const Separator = "----------------------------------------"

// Sink writes frames as they arrive. The first write error is kept and
// later writes are skipped; check Err after the run.
type Sink struct {
	w         io.Writer
	styles    render.Styles
	finalOnly bool
	last      *playback.Frame
	err       error
}

// Option configures a Sink.
type Option func(*Sink)

// WithStyles swaps the plain styles, e.g. for an ANSI-capable writer.
func WithStyles(st render.Styles) Option {
	return func(s *Sink) { s.styles = st }
}

// FinalOnly suppresses intermediate frames; only the terminal frame is written.
func FinalOnly() Option {
	return func(s *Sink) { s.finalOnly = true }
}

// New returns a Sink writing to w.
func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{w: w, styles: render.Plain()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render implements playback.Sink.
func (s *Sink) Render(f playback.Frame) {
	if s.finalOnly && !f.Record.Terminal() {
		s.last = &f
		return
	}
	s.last = nil
	s.write(render.Frame(f, s.styles) + "\n" + Separator + "\n")
}

// Finish implements playback.Sink. An aborted run flushes the last frame
// it saw when intermediate frames were suppressed.
func (s *Sink) Finish(sum playback.Summary) {
	if s.last != nil {
		s.write(render.Frame(*s.last, s.styles) + "\n" + Separator + "\n")
		s.last = nil
	}
	var b strings.Builder
	b.WriteString(render.Outcome(sum, s.styles))
	b.WriteString("\n")
	if !sum.Path.Empty() {
		fmt.Fprintf(&b, "Path: %v\n", sum.Path)
	}
	s.write(b.String())
}

// Err returns the first write error.
func (s *Sink) Err() error { return s.err }

func (s *Sink) write(text string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		s.err = fmt.Errorf("textsink: write: %w", err)
	}
}
