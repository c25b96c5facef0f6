// Package dfs is the depth-first strategy of the visualizer.
//
// Key features:
//   - LIFO stack of (cell, path) entries seeded with (Start, [Start]).
//   - A cell is marked visited when it is popped, not when it is pushed. A
//     cell may therefore sit on the stack several times; stale copies are
//     discarded on pop without counting as a step.
//   - Neighbors are pushed in reverse grid order (right, left, down, up) so
//     they pop in grid order (up, down, left, right), matching BFS's bias.
//   - The path returned is simple and valid but carries no shortest-path
//     guarantee.
//
// Termination:
//
//   - Found:     Target was popped.
//   - Exhausted: the stack emptied; one extra record with Step = last+1.
//
// Complexity:
//
//   - Time:   O(E·L) pushes, E = passable adjacencies, L = path length copied.
//   - Memory: O(E·L) for stacked paths.
//
// Options:
//
//   - WithOnPush(fn)  hook per pushed entry.
//   - WithOnPop(fn)   hook per popped, newly visited cell.
//   - WithOnSkip(fn)  hook per discarded duplicate entry.
package dfs
