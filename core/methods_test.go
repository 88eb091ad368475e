// Query-side contracts of core.Graph: absent-versus-empty distinctions,
// deterministic ordering, and defensive copies.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphroute/graphroute/core"
)

// buildTriangle returns a graph with A→B, B→C, A→C and an edge-less D.
func buildTriangle(t *testing.T) *core.Graph[*junction, *road] {
	t.Helper()
	g := core.New[*junction, *road]()
	require.True(t, g.AddEdge(newJunction("A"), newJunction("B"), &road{lengthKm: 1}))
	require.True(t, g.AddEdgeByID("B", g.AddOrGetVertex(newJunction("C")).ID(), &road{lengthKm: 1}))
	require.True(t, g.AddEdgeByID("A", "C", &road{lengthKm: 5}))
	g.AddOrGetVertex(newJunction("D"))

	return g
}

func TestVertexByID(t *testing.T) {
	g := buildTriangle(t)

	v, ok := g.VertexByID("B")
	require.True(t, ok)
	assert.Equal(t, "B", v.ID())

	_, ok = g.VertexByID("Z")
	assert.False(t, ok)
}

func TestVertices_SortedByID(t *testing.T) {
	g := buildTriangle(t)

	got := g.Vertices()
	ids := make([]string, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID())
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
}

func TestNeighbors_AbsentVersusEmpty(t *testing.T) {
	g := buildTriangle(t)

	// Unknown vertex: absent.
	nbrs, ok := g.NeighborsByID("Z")
	assert.False(t, ok)
	assert.Nil(t, nbrs)

	// Known but edge-less vertex: empty, not absent.
	nbrs, ok = g.NeighborsByID("D")
	require.True(t, ok)
	assert.Empty(t, nbrs)

	// Sorted by ID.
	nbrs, ok = g.NeighborsByID("A")
	require.True(t, ok)
	require.Len(t, nbrs, 2)
	assert.Equal(t, "B", nbrs[0].ID())
	assert.Equal(t, "C", nbrs[1].ID())

	// Nil lookup vertex: absent.
	var nilJunction *junction
	_, ok = g.Neighbors(nilJunction)
	assert.False(t, ok)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildTriangle(t)

	nbrs, ok := g.NeighborsByID("A")
	require.True(t, ok)
	nbrs[0] = newJunction("Mutated")

	again, ok := g.NeighborsByID("A")
	require.True(t, ok)
	assert.Equal(t, "B", again[0].ID(), "caller mutation must not reach graph state")
}

func TestEdge_AbsentCases(t *testing.T) {
	g := buildTriangle(t)

	_, ok := g.EdgeByID("Z", "A") // unknown source
	assert.False(t, ok)
	_, ok = g.EdgeByID("A", "Z") // unknown target
	assert.False(t, ok)
	_, ok = g.EdgeByID("B", "A") // reverse direction never installed
	assert.False(t, ok)

	e, ok := g.EdgeByID("A", "C")
	require.True(t, ok)
	assert.Equal(t, 5.0, e.lengthKm)
}

func TestEdges_AbsentVersusEmpty(t *testing.T) {
	g := buildTriangle(t)

	_, ok := g.EdgesByID("Z")
	assert.False(t, ok)

	edges, ok := g.EdgesByID("D")
	require.True(t, ok)
	assert.Empty(t, edges)

	// Payloads ordered by target ID: A→B (1km) before A→C (5km).
	edges, ok = g.EdgesByID("A")
	require.True(t, ok)
	require.Len(t, edges, 2)
	assert.Equal(t, 1.0, edges[0].lengthKm)
	assert.Equal(t, 5.0, edges[1].lengthKm)
}

func TestCounts(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	// A connection adds two directed edges.
	require.True(t, g.AddConnectionByID("C", "D", &road{lengthKm: 2}))
	assert.Equal(t, 5, g.EdgeCount())
}

func TestString_Deterministic(t *testing.T) {
	g := core.New[*junction, string]()
	require.True(t, g.AddEdge(newJunction("B"), newJunction("A"), "b-a"))
	require.True(t, g.AddEdge(newJunction("A"), newJunction("C"), "a-c"))
	require.True(t, g.AddEdgeByID("A", "B", "a-b"))

	want := "{ A: [B(a-b),C(a-c)],\n  B: [A(b-a)],\n  C: []\n}"
	assert.Equal(t, want, g.String())
}
