package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/graphroute/graphroute/core"
	"github.com/graphroute/graphroute/route"
)

// WeightFunc extracts a non-negative cost from an edge payload. It must be
// pure: the same payload always yields the same weight.
type WeightFunc[E any] func(payload E) float64

// Dijkstra searches for the minimum-total-weight directed path from
// startID to targetID in g, measuring each edge with the supplied weight
// function. TotalWeight of the result is the sum of weights over the
// returned path's consecutive edges.
//
// The result's visited set holds every vertex whose distance was finalized
// before the target was reached. An unknown start or target yields
// ErrVertexNotFound; an unreachable target yields ErrNoPath. If startID
// equals targetID the search succeeds trivially with a single-vertex path
// of weight 0.
//
// Precondition: weight must never return a negative value; the algorithm
// does not defend against negative weights and its result is undefined if
// they occur.
func Dijkstra[V core.Identifiable, E any](g *core.Graph[V, E], startID, targetID string, weight WeightFunc[E], opts ...Option) (*route.Path[V], error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
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

	// 4) Per-vertex search state: best-known cumulative weight, the
	//    predecessor on that best-known path, and a settled flag. Missing
	//    dist entries mean +Inf.
	r := &runner[V, E]{
		graph:   g,
		weight:  weight,
		options: o,
		dist:    make(map[string]float64, g.VertexCount()),
		parent:  make(map[string]string, g.VertexCount()),
		settled: make(map[string]bool, g.VertexCount()),
		path:    path,
	}

	// 5) Seed the frontier with the start vertex at weight 0 and run.
	r.dist[startID] = 0
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, &frontierItem{id: startID, dist: 0})

	return r.process(startID, targetID)
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[V core.Identifiable, E any] struct {
	graph    *core.Graph[V, E]
	weight   WeightFunc[E]
	options  Options
	dist     map[string]float64 // vertex ID → best-known cumulative weight
	parent   map[string]string  // vertex ID → predecessor on best-known path
	settled  map[string]bool    // vertex ID → distance finalized
	frontier frontierQueue
	path     *route.Path[V]
}

// process repeatedly extracts the cheapest frontier entry, settles it, and
// relaxes its outgoing edges, until the target is settled or the frontier
// empties.
func (r *runner[V, E]) process(startID, targetID string) (*route.Path[V], error) {
	for r.frontier.Len() > 0 {
		item := heap.Pop(&r.frontier).(*frontierItem)

		// Lazy decrease-key leaves stale duplicates in the heap; the
		// settled check is what makes skipping them safe.
		if r.settled[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[item.id] = true
		r.path.MarkVisited(item.id)

		if item.id == targetID {
			r.path.TotalWeight = item.dist
			r.reconstruct(startID, targetID)
			return r.path, nil
		}

		r.relax(item.id, item.dist)
	}

	return nil, fmt.Errorf("%w: %q→%q", ErrNoPath, startID, targetID)
}

// relax attempts to improve the best-known weight of every non-settled
// neighbor of u, pushing a fresh frontier entry on each improvement.
func (r *runner[V, E]) relax(u string, du float64) {
	neighbors, _ := r.graph.NeighborsByID(u)
	for _, nb := range neighbors {
		v := nb.ID()
		if r.settled[v] {
			continue
		}

		payload, ok := r.graph.EdgeByID(u, v)
		if !ok {
			continue
		}

		candidate := du + r.weight(payload)
		if candidate > r.options.MaxDistance {
			continue
		}
		if known, seen := r.dist[v]; seen && candidate >= known {
			continue
		}

		r.dist[v] = candidate
		r.parent[v] = u
		heap.Push(&r.frontier, &frontierItem{id: v, dist: candidate})
	}
}

// reconstruct walks the predecessor links from the target back to the
// start, prepending each vertex so the sequence reads start→target.
func (r *runner[V, E]) reconstruct(startID, targetID string) {
	for id := targetID; ; id = r.parent[id] {
		v, _ := r.graph.VertexByID(id)
		r.path.Vertices.Prepend(v)
		if id == startID {
			return
		}
	}
}

// frontierItem is one heap entry: a vertex and the cumulative weight it
// was pushed with.
type frontierItem struct {
	id   string
	dist float64
}

// frontierQueue is a min-heap of *frontierItem ordered by dist ascending,
// breaking ties by vertex ID ascending so extraction order — and therefore
// the discovered path among equally cheap ones — is deterministic.
type frontierQueue []*frontierItem

func (q frontierQueue) Len() int { return len(q) }

func (q frontierQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].id < q[j].id
}

func (q frontierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x interface{}) { *q = append(*q, x.(*frontierItem)) }

func (q *frontierQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
