// Package graph provides a small directed weighted graph and two algorithms
// driven by heap.BinaryMinimumHeap handles.
//
// Overview:
//
//   - Digraph[V] stores vertices in insertion order and each vertex's outgoing
//     edges in a list.ArrayList.
//   - Dijkstra computes single-source shortest distances. Every discovered
//     vertex owns one heap node; a shorter path lowers that node's priority in
//     place (decrease-key) instead of pushing a duplicate.
//   - TopologicalSort runs Kahn's algorithm with every vertex in the heap,
//     prioritized by its current indegree. Removing a vertex lowers the
//     priority of its successors. A pop whose priority is not zero means every
//     remaining vertex lies on or behind a cycle: ErrCycleDetected.
//
// Options:
//
//   - WithContext(ctx): both algorithms check ctx between heap pops.
//   - WithLogger(l): Debug records for pops, relaxations and cycles. The
//     default logger discards everything.
//   - WithReturnPath(): Dijkstra also returns the predecessor map.
//
// Complexity:
//
//   - Dijkstra: O((V + E) log V) time, O(V) heap entries.
//   - TopologicalSort: O((V + E) log V) time, O(V) space.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight, ErrCycleDetected.
package graph
