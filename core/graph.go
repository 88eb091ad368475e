// Mutation methods of Graph. Every method here preserves the four
// representation invariants documented in doc.go.

package core

// AddOrGetVertex inserts v into the graph if no vertex with v's ID exists
// yet, and returns the vertex that is now canonically stored under that ID.
// On an ID conflict the existing vertex is kept and returned unchanged
// (first writer wins; attributes of v are discarded).
//
// A nil vertex or an empty ID is rejected: nothing is stored and v is
// returned as-is.
//
// Complexity: O(1)
func (g *Graph[V, E]) AddOrGetVertex(v V) V {
	if isNil(v) || v.ID() == "" {
		return v
	}

	id := v.ID()
	if existing, ok := g.vertices[id]; ok {
		return existing
	}

	g.vertices[id] = v
	// Bootstrap the adjacency entry so invariant 2 holds immediately.
	g.adjacency[id] = make(map[string]E)

	return v
}

// AddEdge stores payload as the directed edge from→to.
// Both endpoints are inserted first if they are not yet present (so the
// vertex set may grow even when the edge itself is rejected). The edge is
// stored only if the ordered pair (from, to) is still free; a duplicate
// returns false and leaves the existing payload untouched.
//
// Nil vertices and nil payloads are rejected with false.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(from, to V, payload E) bool {
	if isNil(from) || isNil(to) || isNil(payload) {
		return false
	}

	// Resolve both endpoints to their canonical stored vertices.
	from = g.AddOrGetVertex(from)
	to = g.AddOrGetVertex(to)

	fromAdj, ok := g.adjacency[from.ID()]
	if !ok {
		return false // endpoint had an empty ID and was never registered
	}
	if _, ok = g.vertices[to.ID()]; !ok {
		return false
	}

	if _, dup := fromAdj[to.ID()]; dup {
		return false
	}
	fromAdj[to.ID()] = payload

	return true
}

// AddEdgeByID stores payload as the directed edge fromID→toID.
// Unlike AddEdge it never grows the vertex set: if either ID is unknown,
// nothing changes and false is returned.
//
// Complexity: O(1)
func (g *Graph[V, E]) AddEdgeByID(fromID, toID string, payload E) bool {
	from, okFrom := g.vertices[fromID]
	to, okTo := g.vertices[toID]
	if !okFrom || !okTo {
		return false
	}

	return g.AddEdge(from, to, payload)
}

// AddConnection installs two directed edges a→b and b→a carrying the same
// payload. The operation is transactional: if either direction already
// holds an edge, neither is written and false is returned, so a connection
// never half-succeeds. Endpoints are still inserted into the vertex set
// before the check, like AddEdge.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddConnection(a, b V, payload E) bool {
	if isNil(a) || isNil(b) || isNil(payload) {
		return false
	}

	a = g.AddOrGetVertex(a)
	b = g.AddOrGetVertex(b)

	aAdj, okA := g.adjacency[a.ID()]
	bAdj, okB := g.adjacency[b.ID()]
	if !okA || !okB {
		return false
	}

	// Verify both directions are free before touching either.
	if _, dup := aAdj[b.ID()]; dup {
		return false
	}
	if _, dup := bAdj[a.ID()]; dup {
		return false
	}

	aAdj[b.ID()] = payload
	bAdj[a.ID()] = payload

	return true
}

// AddConnectionByID installs a→b and b→a by vertex IDs. Both vertices must
// already exist; otherwise nothing changes and false is returned.
//
// Complexity: O(1)
func (g *Graph[V, E]) AddConnectionByID(aID, bID string, payload E) bool {
	a, okA := g.vertices[aID]
	b, okB := g.vertices[bID]
	if !okA || !okB {
		return false
	}

	return g.AddConnection(a, b, payload)
}

// RemoveUnconnectedVertices drops every fully isolated vertex — one with
// neither outgoing nor incoming edges — together with its (empty) adjacency
// entry, and reports how many vertices were removed.
//
// Vertices that only receive edges are kept: removing them would leave
// dangling edge targets and break invariant 4.
//
// Complexity: O(V + E)
func (g *Graph[V, E]) RemoveUnconnectedVertices() int {
	// In-degrees are not indexed, so count them in one pass over the edges.
	inDegree := make(map[string]int, len(g.vertices))
	for _, nbrs := range g.adjacency {
		for toID := range nbrs {
			inDegree[toID]++
		}
	}

	removed := 0
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 && inDegree[id] == 0 {
			delete(g.vertices, id)
			delete(g.adjacency, id)
			removed++
		}
	}

	return removed
}
