package search

import (
	"fmt"
	"strings"
)

// Algorithm identifies a traversal strategy.
type Algorithm int

const (
	// BFS is breadth-first search (FIFO queue, shortest path).
	BFS Algorithm = iota + 1
	// DFS is depth-first search (LIFO stack, any path).
	DFS
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "bfs" or "dfs" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Name is the long human-readable name.
func (a Algorithm) Name() string {
	switch a {
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
	default:
		return a.String()
	}
}

// Blurb is the one-line menu description.
func (a Algorithm) Blurb() string {
	switch a {
	case BFS:
		return "Explores level by level, finds shortest path"
	case DFS:
		return "Goes deep first, uses less memory"
	default:
		return ""
	}
}

// Facts returns the four fixed guide lines shown beside every frame.
func (a Algorithm) Facts() [4]string {
	switch a {
	case BFS:
		return [4]string{
			"BFS (Breadth-First Search):",
			"• Uses a QUEUE (First In, First Out)",
			"• Explores level by level from the start",
			"• Guarantees finding the shortest path",
		}
	case DFS:
		return [4]string{
			"DFS (Depth-First Search):",
			"• Uses a STACK (Last In, First Out)",
			"• Goes as deep as possible first, then backtracks",
			"• The path found may NOT be the shortest",
		}
	default:
		return [4]string{a.String()}
	}
}

// Progress narrates how far r is from Start. Empty when r has no path.
func (a Algorithm) Progress(r Record) string {
	if r.Path.Empty() {
		return ""
	}
	switch a {
	case BFS:
		return fmt.Sprintf("Currently exploring all positions at level %d from start.", r.Depth())
	case DFS:
		return fmt.Sprintf("Currently at a depth of %d steps from start.", r.Depth())
	default:
		return ""
	}
}

// Outcome is the closing line for a terminal status.
func (a Algorithm) Outcome(s Status) string {
	switch {
	case s == Found && a == BFS:
		return "BFS found the SHORTEST path!"
	case s == Found && a == DFS:
		return "DFS found a path! (May not be shortest)"
	case s == Found:
		return a.String() + " found a path!"
	case s == Exhausted:
		return a.String() + ": No path found!"
	default:
		return ""
	}
}

// Optimal reports whether the strategy guarantees a shortest path.
func (a Algorithm) Optimal() bool { return a == BFS }
