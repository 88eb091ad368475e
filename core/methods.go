// Query methods of Graph. All of them are read-only and return defensive
// copies. Callers never receive a live view into internal maps.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// VertexByID finds the vertex stored under the given ID.
// The second return value reports whether the vertex exists.
//
// Complexity: O(1)
func (g *Graph[V, E]) VertexByID(id string) (V, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether a vertex with the given ID exists.
//
// Complexity: O(1)
func (g *Graph[V, E]) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertices ordered by ID ascending.
// The slice is a copy; mutating it does not affect the graph.
//
// Complexity: O(V log V)
func (g *Graph[V, E]) Vertices() []V {
	ids := g.vertexIDs()
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.vertices[id])
	}

	return out
}

// Neighbors returns the vertices directly reachable from v by one outgoing
// edge, ordered by ID ascending. The boolean is false when v itself is
// unknown to the graph — distinct from a known vertex with no neighbors,
// which yields an empty slice and true.
//
// Complexity: O(d log d) where d is the out-degree of v.
func (g *Graph[V, E]) Neighbors(v V) ([]V, bool) {
	if isNil(v) {
		return nil, false
	}

	return g.NeighborsByID(v.ID())
}

// NeighborsByID is Neighbors keyed by vertex ID.
//
// Complexity: O(d log d)
func (g *Graph[V, E]) NeighborsByID(id string) ([]V, bool) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, false
	}

	toIDs := make([]string, 0, len(nbrs))
	for toID := range nbrs {
		toIDs = append(toIDs, toID)
	}
	sort.Strings(toIDs)

	out := make([]V, 0, len(toIDs))
	for _, toID := range toIDs {
		out = append(out, g.vertices[toID])
	}

	return out, true
}

// Edge returns the payload of the directed edge from→to.
// The boolean is false when either endpoint is unknown or no such edge
// exists.
//
// Complexity: O(1)
func (g *Graph[V, E]) Edge(from, to V) (E, bool) {
	if isNil(from) || isNil(to) {
		var zero E
		return zero, false
	}

	return g.EdgeByID(from.ID(), to.ID())
}

// EdgeByID is Edge keyed by vertex IDs.
//
// Complexity: O(1)
func (g *Graph[V, E]) EdgeByID(fromID, toID string) (E, bool) {
	nbrs, ok := g.adjacency[fromID]
	if !ok {
		var zero E
		return zero, false
	}
	payload, ok := nbrs[toID]

	return payload, ok
}

// Edges returns the payloads of all outgoing edges of from, ordered by
// target vertex ID ascending. The boolean is false when from is unknown;
// a known vertex with no outgoing edges yields an empty slice and true.
//
// Complexity: O(d log d)
func (g *Graph[V, E]) Edges(from V) ([]E, bool) {
	if isNil(from) {
		return nil, false
	}

	return g.EdgesByID(from.ID())
}

// EdgesByID is Edges keyed by vertex ID.
//
// Complexity: O(d log d)
func (g *Graph[V, E]) EdgesByID(fromID string) ([]E, bool) {
	nbrs, ok := g.adjacency[fromID]
	if !ok {
		return nil, false
	}

	toIDs := make([]string, 0, len(nbrs))
	for toID := range nbrs {
		toIDs = append(toIDs, toID)
	}
	sort.Strings(toIDs)

	out := make([]E, 0, len(toIDs))
	for _, toID := range toIDs {
		out = append(out, nbrs[toID])
	}

	return out, true
}

// VertexCount returns the number of vertices in the graph.
//
// Complexity: O(1)
func (g *Graph[V, E]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the total number of directed edges, summing the
// outgoing adjacency size of every vertex. A connection made with
// AddConnection counts as two.
//
// Complexity: O(V)
func (g *Graph[V, E]) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total
}

// String renders the graph as "{ id: [to(payload), ...], ... }" with
// vertices and neighbors in ID order, for diagnostics and tests.
//
// Complexity: O(V log V + E log E)
func (g *Graph[V, E]) String() string {
	var b strings.Builder
	b.WriteString("{ ")

	ids := g.vertexIDs()
	for i, id := range ids {
		if i > 0 {
			b.WriteString(",\n  ")
		}
		b.WriteString(id)
		b.WriteString(": [")

		toIDs := make([]string, 0, len(g.adjacency[id]))
		for toID := range g.adjacency[id] {
			toIDs = append(toIDs, toID)
		}
		sort.Strings(toIDs)
		for j, toID := range toIDs {
			if j > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "%s(%v)", toID, g.adjacency[id][toID])
		}
		b.WriteString("]")
	}
	b.WriteString("\n}")

	return b.String()
}

// vertexIDs returns all vertex IDs sorted ascending.
func (g *Graph[V, E]) vertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
