// Package mazewalk is a small teaching tool that animates breadth-first and
// depth-first search on a grid maze, one explained step at a time.
//
// 🚀 What is mazewalk?
//
//	A terminal visualizer that brings together:
//		• A grid model: parse symbol rows, 4-neighbour adjacency, reachability
//		• Searches as pull iterators: BFS and DFS yield one Record per step
//		• Paced playback: a Driver relays records to any Sink at a live delay
//		• Two front ends: an interactive bubbletea TUI and a plain-text sink
//
// ✨ Why mazewalk?
//
//   - Every step is narrated: current cell, visited set, frontier size
//   - Searches never sleep or print: pacing and drawing live elsewhere
//   - Settings change live: the delay is re-read before every wait
//   - Deterministic: the same grid always yields the same records
//
// Packages:
//
//	grid/      the maze: cells, kinds, neighbours, components
//	search/    Record, Path, Status and the Stepper contract
//	bfs/       queue-driven search, marks cells at enqueue
//	dfs/       stack-driven search, marks cells at pop
//	settings/  delay and statistics flag, safe for concurrent reads
//	playback/  the pacing Driver and the Sink interface
//	render/    frames as text, with lipgloss styles
//	tui/       the interactive menu, settings and run screens
//	textsink/  frames written to any io.Writer
//	config/    YAML file, environment overrides and validation
//
// Quick ASCII example:
//
//	S . #
//
//	S   #
//
//	# # E
//
// is BFS at step 2 on a sealed maze: the current path in S, a visited cell in '.'.
//
//	go run github.com/katalvlaran/mazewalk/cmd/mazewalk
package mazewalk
