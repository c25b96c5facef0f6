package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazewalk/search"
)

// ErrInvalidChoice is returned for a key that selects nothing on the
// current screen.
var ErrInvalidChoice = errors.New("tui: invalid choice")

// Choice is a main menu selection.
type Choice int

const (
	RunBFS Choice = iota + 1
	RunDFS
	OpenSettings
	Quit
)

// Algorithm returns the algorithm a Run choice starts.
func (c Choice) Algorithm() (search.Algorithm, bool) {
	switch c {
	case RunBFS:
		return search.BFS, true
	case RunDFS:
		return search.DFS, true
	default:
		return 0, false
	}
}

// ParseChoice maps a key to a menu choice. Keys "1" through "4" follow the
// menu order.
func ParseChoice(key string) (Choice, error) {
	switch strings.TrimSpace(key) {
	case "1":
		return RunBFS, nil
	case "2":
		return RunDFS, nil
	case "3":
		return OpenSettings, nil
	case "4":
		return Quit, nil
	}
	return 0, fmt.Errorf("%w: %q, enter 1-4", ErrInvalidChoice, key)
}

// SettingsEdit is a settings menu selection.
type SettingsEdit int

const (
	SetDelay SettingsEdit = iota + 1
	ToggleStats
	Back
)

// ParseSettingsEdit maps a key to a settings action. "esc" also goes back.
func ParseSettingsEdit(key string) (SettingsEdit, error) {
	switch strings.TrimSpace(key) {
	case "1":
		return SetDelay, nil
	case "2":
		return ToggleStats, nil
	case "3", "esc":
		return Back, nil
	}
	return 0, fmt.Errorf("%w: %q, enter 1-3", ErrInvalidChoice, key)
}
