// Package route defines the value types produced by path searches.
//
// List is a minimal insert-only sequence with O(1) insertion at both ends
// and no reallocation — path reconstruction prepends vertices while
// unwinding from the target, and trivial paths append, so both ends must
// be cheap.
//
// Path bundles a search outcome: the ordered vertex sequence from start to
// target, the accumulated weight, and the set of vertex IDs the search
// visited on the way. The visited set is a diagnostic witness of search
// progress, not part of the path's own invariants.
//
// Path invariant: for every adjacent pair (v[i-1], v[i]) in the sequence,
// the producing graph holds a directed edge v[i-1]→v[i]. A single-vertex
// path has no edges and weight 0.
package route
