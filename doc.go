// Package graphroute is an in-memory engine for building weighted directed
// graphs over your own vertex and edge types, and searching paths through them.
//
// What graphroute gives you:
//
//   - Generic storage: core.Graph[V, E] stores any vertex type that can name
//     itself (core.Identifiable) and any opaque edge payload, with identity
//     defined solely by the vertex ID.
//   - Traversals: depth-first (dfs) and breadth-first (bfs) path search,
//     with deterministic neighbor ordering.
//   - Shortest paths: Dijkstra over a caller-supplied weight function
//     extracting a non-negative cost from each edge payload.
//   - Path results: every search yields a route.Path — the ordered vertex
//     sequence, the accumulated weight, and the set of vertices the search
//     touched along the way.
//
// Design principles:
//
//   - Identity by ID: two vertex values with the same ID are the same
//     graph vertex; structural equality is never consulted.
//   - Results over faults: duplicate inserts, unknown vertices, and
//     unreachable targets are ordinary return values, not panics.
//   - Determinism: neighbor enumeration and tie-breaking are pinned to
//     ascending vertex ID, so searches are reproducible and testable.
//   - Pure Go, pure memory: no I/O, no goroutines, no hidden deps.
//
// The module is organized as one package per concern:
//
//	core/     — the directed graph store: mutation, lookup, invariants
//	route/    — ordered path sequence and the Path result type
//	dfs/      — depth-first path search
//	bfs/      — breadth-first (fewest-hops) path search
//	dijkstra/ — minimum-total-weight path search
//
// Quick ASCII example:
//
//	A──1──B
//	 \    │
//	  5   1
//	   \  │
//	     C
//
// Dijkstra(A→C) follows A→B→C at total weight 2, while BFS(A→C) takes the
// direct one-hop edge. See the Example tests in each package for full code.
//
// The graph is not safe for concurrent use; wrap it in your own
// synchronization if you need to share it across goroutines.
package graphroute
