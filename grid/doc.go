// Package grid models the fixed 2-D maze a search runs over.
//
// What:
//
//   - Grid wraps a rectangular layout of cell kinds (Open, Obstacle, Start, Target).
//   - Exactly one Start and one Target are required; both are located once at
//     construction and memoized.
//   - Neighbors returns the axis-aligned in-bounds cells in the fixed order
//     up, down, left, right. That order decides exploration order downstream
//     and is part of the contract.
//   - Component collects the passable region reachable from a cell.
//
// Why:
//
//   - BFS and DFS share one read-only map; nothing mutates a Grid after New.
//   - Configuration problems surface before any run starts.
//
// Complexity:
//
//   - New / Parse:  O(R×C) time and memory.
//   - KindAt, InBounds, Neighbors: O(1).
//   - Component:    O(R×C).
//
// Errors:
//
//   - ErrConfiguration is the root of every construction error:
//     ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol,
//     ErrNoStart, ErrMultipleStart, ErrNoTarget, ErrMultipleTarget.
//   - ErrOutOfBounds: a query against a coordinate outside the grid.
//     Neighbors never produces such a coordinate, so seeing it means a bug.
package grid
