package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
)

// Delay bounds, in seconds.
const (
	MinDelay     = 0.1
	MaxDelay     = 2.0
	DefaultDelay = 0.5
)

var (
	// ErrInvalidDelay indicates a delay outside [MinDelay, MaxDelay].
	ErrInvalidDelay = errors.New("settings: delay must be between 0.1 and 2.0 seconds")
	// ErrNotNumeric indicates delay input that does not parse as a number.
	ErrNotNumeric = errors.New("settings: invalid input, not a number")
)

// ValidationError reports a rejected settings edit. It unwraps to
// ErrInvalidDelay or ErrNotNumeric.
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// delayEdit is the validated shape of a delay change.
type delayEdit struct {
	Seconds float64 `validate:"gte=0.1,lte=2"`
}

var validate = validator.New()

// Settings is safe for one writer and any number of readers.
type Settings struct {
	delay     atomic.Int64 // time.Duration
	showStats atomic.Bool
}

// View is a plain copy of the settings handed to sinks.
type View struct {
	Delay     time.Duration
	ShowStats bool
}

// Seconds returns Delay in seconds.
func (v View) Seconds() float64 { return v.Delay.Seconds() }

// New returns settings with a 0.5s delay and statistics on.
func New() *Settings {
	s := &Settings{}
	s.delay.Store(int64(seconds(DefaultDelay)))
	s.showStats.Store(true)
	return s
}

// FromValues builds settings from explicit values, validating the delay.
func FromValues(delay float64, showStats bool) (*Settings, error) {
	s := New()
	if err := s.SetDelay(delay); err != nil {
		return nil, err
	}
	s.showStats.Store(showStats)
	return s, nil
}

// SetDelay changes the pacing delay. Values outside [0.1, 2.0] are rejected
// with a *ValidationError and the previous delay is kept.
func (s *Settings) SetDelay(sec float64) error {
	if err := validate.Struct(delayEdit{Seconds: sec}); err != nil {
		return &ValidationError{
			Field: "delay",
			Input: strconv.FormatFloat(sec, 'g', -1, 64),
			Err:   ErrInvalidDelay,
		}
	}
	s.delay.Store(int64(seconds(sec)))
	return nil
}

// ParseDelay parses free-form user input and applies it with SetDelay.
func (s *Settings) ParseDelay(input string) error {
	trimmed := strings.TrimSpace(input)
	sec, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return &ValidationError{Field: "delay", Input: trimmed, Err: ErrNotNumeric}
	}
	if err := s.SetDelay(sec); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Input = trimmed
		}
		return err
	}
	return nil
}

// ToggleStats flips the statistics flag and returns the new value.
func (s *Settings) ToggleStats() bool {
	for {
		old := s.showStats.Load()
		if s.showStats.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetShowStats sets the statistics flag.
func (s *Settings) SetShowStats(on bool) { s.showStats.Store(on) }

// Delay returns the current pacing delay.
func (s *Settings) Delay() time.Duration { return time.Duration(s.delay.Load()) }

// Seconds returns the current pacing delay in seconds.
func (s *Settings) Seconds() float64 { return s.Delay().Seconds() }

// ShowStats reports whether statistics are displayed.
func (s *Settings) ShowStats() bool { return s.showStats.Load() }

// Snapshot copies the current values. Fields are read independently.
func (s *Settings) Snapshot() View {
	return View{Delay: s.Delay(), ShowStats: s.ShowStats()}
}

func seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
