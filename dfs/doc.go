// Package dfs implements depth-first path search over a core.Graph.
//
// DFS commits to one neighbor at a time and backtracks on dead ends. It
// finds some path from start to target if one exists, with no optimality
// guarantee: which path is found depends on neighbor order, and that order
// is pinned to ascending vertex ID so results are deterministic.
//
// Every vertex is marked visited before its neighbors are explored, which
// guarantees termination on cyclic graphs; every visited vertex — not only
// those on the final path — is recorded in the result's visited set.
//
// Complexity:
//
//   - Time:  O(V + E·log d) — each vertex once, neighbor lists sorted by ID.
//   - Space: O(V) for the visited set and the recursion stack.
//
// Errors:
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexNotFound    if the start or target ID is unknown (wraps ErrNoPath).
//   - ErrNoPath            if the target exists but cannot be reached.
//   - any error returned by an OnVisit hook.
package dfs
