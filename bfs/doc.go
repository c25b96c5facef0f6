// Package bfs is the breadth-first strategy of the visualizer.
//
// What
//
//   - Explores cells in non-decreasing distance from Start using a FIFO queue.
//   - Emits one search.Record per dequeued cell through the search.Stepper
//     contract; the first record whose cell is Target is Found and carries
//     the route.
//   - Cells are marked visited when they are enqueued, not when dequeued.
//     No cell is ever queued twice, and the first time Target is dequeued
//     its path has the minimum number of edges.
//   - Neighbors are enqueued in grid order: up, down, left, right.
//
// Termination
//
//   - Found:     Target was dequeued; neighbors of Target are not expanded.
//   - Exhausted: the queue emptied. One extra record with Step = last+1 and
//     an empty Path reports it.
//
// Complexity (V = passable cells)
//
//   - Time:   O(V·L) where L is the longest path copied on enqueue.
//   - Memory: O(V·L) for the queued paths plus O(V) per visited snapshot.
//
// Options
//
//   - WithOnEnqueue(fn): hook after a neighbor is marked visited and queued.
//   - WithOnDequeue(fn): hook right after a cell leaves the queue.
package bfs
