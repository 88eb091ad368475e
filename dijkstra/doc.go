// Package dijkstra implements Dijkstra's shortest-path search over a
// core.Graph with a caller-supplied weight function.
//
// Dijkstra computes the minimum-total-weight directed path from start to
// target. The frontier is a min-heap keyed by best-known cumulative
// weight, with a "lazy decrease-key" strategy: relaxation pushes duplicate
// entries, and stale ones are skipped on extraction via the settled check.
// Entries of equal weight are extracted in ascending vertex ID order, so
// among equally cheap paths the result is deterministic.
//
// The weight function is the one plugin point: a pure mapping from edge
// payload to a non-negative cost. Non-negativity is a precondition, not a
// runtime check — feeding negative weights yields an undefined result.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex settled at most once, each
//     relaxation may push one heap entry.
//   - Space: O(V + E) for per-vertex state and the heap under lazy
//     decrease-key.
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrNilWeightFunc     if no weight function is supplied.
//   - ErrVertexNotFound    if the start or target ID is unknown (wraps ErrNoPath).
//   - ErrNoPath            if the target exists but cannot be reached
//     (also under a WithMaxDistance cap that excludes it).
package dijkstra
