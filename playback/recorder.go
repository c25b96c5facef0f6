package playback

import "sync"

// Recorder is a Sink that keeps every frame and the summary in memory.
// Hooks, when set, run after the frame is stored.
type Recorder struct {
	mu       sync.Mutex
	frames   []Frame
	summary  *Summary
	OnRender func(Frame)
	OnFinish func(Summary)
}

// Render implements Sink.
func (r *Recorder) Render(f Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
	if r.OnRender != nil {
		r.OnRender(f)
	}
}

// Finish implements Sink.
func (r *Recorder) Finish(s Summary) {
	r.mu.Lock()
	r.summary = &s
	r.mu.Unlock()
	if r.OnFinish != nil {
		r.OnFinish(s)
	}
}

// Frames returns a copy of the frames rendered so far.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Summary returns the summary and whether Finish was called.
func (r *Recorder) Summary() (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.summary == nil {
		return Summary{}, false
	}
	return *r.summary, true
}
