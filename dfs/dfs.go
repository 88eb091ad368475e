package dfs

import (
	"fmt"

	"github.com/graphroute/graphroute/core"
	"github.com/graphroute/graphroute/route"
)

// walker encapsulates the mutable state of one DFS run.
type walker[V core.Identifiable, E any] struct {
	graph    *core.Graph[V, E]
	opts     Options
	targetID string
	path     *route.Path[V]
}

// DFS searches for a directed path from startID to targetID in g.
//
// Neighbors are explored in ascending vertex ID order, so the returned
// path is deterministic for a given graph; it is not guaranteed to be
// shortest by any measure. TotalWeight of the result is the hop count of
// the returned path.
//
// An unknown start or target yields ErrVertexNotFound; an unreachable
// target yields ErrNoPath. If startID equals targetID the search succeeds
// trivially with a single-vertex path of weight 0.
func DFS[V core.Identifiable, E any](g *core.Graph[V, E], startID, targetID string, opts ...Option) (*route.Path[V], error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Resolve both identifiers before anything else.
	start, ok := g.VertexByID(startID)
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, startID)
	}
	if !g.HasVertex(targetID) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, targetID)
	}

	// 3) Recurse from the start vertex. The walker builds the vertex
	//    sequence front-first while unwinding.
	w := &walker[V, E]{graph: g, opts: o, targetID: targetID, path: route.NewPath[V]()}
	found, err := w.visit(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, startID, targetID)
	}

	// 4) Unweighted search: cost is one per edge.
	w.path.TotalWeight = float64(w.path.Vertices.Len() - 1)

	return w.path, nil
}

// visit explores cur depth-first and reports whether the target was
// reached through it. On success the vertices of the discovered path are
// prepended to the result sequence during unwind, target first, start last.
func (w *walker[V, E]) visit(cur V) (bool, error) {
	id := cur.ID()

	// Mark before descending — this is what terminates cycles.
	w.path.MarkVisited(id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if id == w.targetID {
		w.path.Vertices.Prepend(cur)
		return true, nil
	}

	// Neighbors arrive sorted by ID — the pinned exploration order.
	neighbors, ok := w.graph.NeighborsByID(id)
	if !ok {
		return false, nil
	}

	for _, nb := range neighbors {
		nid := nb.ID()
		if w.path.WasVisited(nid) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}

		found, err := w.visit(nb)
		if err != nil {
			return false, err
		}
		if found {
			w.path.Vertices.Prepend(cur)
			return true, nil
		}
	}

	return false, nil
}
