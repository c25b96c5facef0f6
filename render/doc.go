// Package render turns playback frames into text.
//
// Both presentation sinks use it: the terminal UI with colored Styles and
// the plain-text sink with Plain styles. Rendering is a pure function of the
// frame, so tests compare strings directly.
//
// Symbols: '*' final path, 'S' current path, '.' visited, otherwise the
// cell's own symbol ('#' obstacle, 'E' target, ' ' open). Cells are spaced
// one column apart with a blank line between rows.
package render
