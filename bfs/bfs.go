package bfs

import (
	"fmt"

	"github.com/graphroute/graphroute/core"
	"github.com/graphroute/graphroute/route"
)

// queueItem pairs a vertex with its BFS depth from the start.
type queueItem[V core.Identifiable] struct {
	vertex V
	depth  int
}

// BFS searches for a directed path from startID to targetID in g and
// returns the path with the fewest edges among all existing paths.
// TotalWeight of the result is that edge count.
//
// An unknown start or target yields ErrVertexNotFound; an unreachable
// target yields ErrNoPath. If startID equals targetID the search succeeds
// trivially with a single-vertex path of weight 0.
func BFS[V core.Identifiable, E any](g *core.Graph[V, E], startID, targetID string, opts ...Option) (*route.Path[V], error) {
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

	path := route.NewPath[V]()
	path.MarkVisited(startID)

	// 3) Easy target: start and target are the same vertex.
	if startID == targetID {
		path.Vertices.Append(start)
		return path, nil
	}

	// 4) Seed the frontier with the start vertex at depth 0 and remember,
	//    for every discovered vertex, which vertex discovered it.
	parent := make(map[string]V, g.VertexCount())
	queue := make([]queueItem[V], 0, g.VertexCount())
	queue = append(queue, queueItem[V]{vertex: start, depth: 0})
	if o.OnEnqueue != nil {
		o.OnEnqueue(startID, 0)
	}

	// 5) Process the frontier in FIFO order.
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		// Neighbors arrive sorted by ID — the pinned exploration order.
		neighbors, _ := g.NeighborsByID(item.vertex.ID())
		for _, nb := range neighbors {
			nid := nb.ID()

			// Visited is checked (and set) at enqueue time so a vertex
			// can never enter the frontier twice.
			if path.WasVisited(nid) {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(nid) {
				continue
			}

			path.MarkVisited(nid)
			parent[nid] = item.vertex

			if nid == targetID {
				reconstruct(path, parent, nb, startID)
				path.TotalWeight = float64(item.depth + 1)
				return path, nil
			}

			if o.OnEnqueue != nil {
				o.OnEnqueue(nid, item.depth+1)
			}
			queue = append(queue, queueItem[V]{vertex: nb, depth: item.depth + 1})
		}
	}

	// 6) Frontier exhausted without reaching the target.
	return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, startID, targetID)
}

// reconstruct walks the parent links from the target back to the start,
// prepending each vertex so the sequence reads start→target.
func reconstruct[V core.Identifiable](path *route.Path[V], parent map[string]V, target V, startID string) {
	cur := target
	for {
		path.Vertices.Prepend(cur)
		if cur.ID() == startID {
			return
		}
		cur = parent[cur.ID()]
	}
}
