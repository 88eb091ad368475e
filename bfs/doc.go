// Package bfs implements breadth-first path search over a core.Graph.
//
// BFS explores layer by layer through a FIFO frontier, so the returned
// path has the minimum number of edges among all existing paths from
// start to target. A vertex is marked visited at the moment it is
// enqueued — not when dequeued — which prevents double enqueueing; every
// enqueued vertex is recorded in the result's visited set. Path
// reconstruction walks the parent links recorded at discovery time.
//
// Neighbor enumeration is pinned to ascending vertex ID, so among several
// fewest-hop paths the one through lexicographically smaller vertices is
// returned.
//
// Complexity:
//
//   - Time:  O(V + E·log d) — each vertex enqueued once, neighbor lists
//     sorted by ID.
//   - Space: O(V) for the frontier, visited set, and parent links.
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexNotFound    if the start or target ID is unknown (wraps ErrNoPath).
//   - ErrNoPath            if the target exists but cannot be reached.
package bfs
