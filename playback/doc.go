// Package playback paces a search.Stepper for display.
//
// A Driver pulls one Record at a time, hands it to a Sink together with the
// grid and a fresh settings snapshot, and then waits for the configured delay
// before pulling the next one. The wait is the only blocking point. It ends
// early when the context is cancelled (abort, return to menu) or when
// FastForward is called (remaining records are still delivered, in order,
// without pauses). A terminal Record ends the run and the Sink receives a
// Summary.
//
// The Driver knows nothing about BFS or DFS beyond the Record contract.
package playback
