// Package core provides the fundamental in-memory directed graph store.
//
// A Graph[V, E] owns a catalog of vertices keyed by their unique string ID
// and an adjacency structure mapping each vertex to its outgoing edges.
// Vertex types are caller-defined and only need to satisfy Identifiable;
// edge payloads are fully opaque to the graph.
//
// Representation invariants (hold after every exported mutation):
//
//  1. Every vertex is registered in the catalog under its own ID, and IDs
//     are unique (a second vertex with the same ID is never stored).
//  2. Every registered vertex has an adjacency entry, even if empty.
//  3. An ordered pair (from, to) carries at most one edge payload; the
//     reverse pair is stored independently.
//  4. Every vertex appearing in the adjacency structure — as a source or
//     as a target — is also registered in the catalog, and vice versa.
//
// Failure model:
//
//   - Duplicate vertex insertion returns the already-stored vertex.
//   - Duplicate edge insertion returns false and changes nothing.
//   - Nil vertices and nil edge payloads are rejected with false.
//   - Lookups report absence via a comma-ok boolean, distinguishing
//     "vertex unknown" from "vertex known but edge-less".
//
// Determinism: every accessor that returns a slice orders it by vertex ID
// ascending, so traversal algorithms built on top produce reproducible
// results.
//
// The graph is single-threaded by design: it performs no locking and must
// not be mutated and read concurrently. Callers that need sharing should
// add external synchronization.
package core
