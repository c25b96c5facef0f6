// Package tui is the interactive terminal front end.
//
// # Description
//
// Model is a bubbletea model with four screens: the main menu, the settings
// menu (with a delay prompt), a running screen fed by a playback.Driver and
// a finished screen holding the last frame until a key is pressed.
//
// The driver runs inside a tea.Cmd goroutine. Its sink forwards every
// playback.Frame to the program with Program.Send, so records reach the
// model in step order and the model never blocks on the search.
//
// # Keys
//
//	menu      1 BFS, 2 DFS, 3 settings, 4 quit
//	settings  1 delay, 2 toggle statistics, 3 or esc back
//	running   f fast-forward, esc or q abort to the menu
//	finished  any key returns to the menu
//
// ctrl+c quits from anywhere, aborting a run first.
//
// # Thread Safety
//
// Model is owned by the bubbletea event loop. Settings are shared with the
// driver goroutine and are safe for that.
package tui
