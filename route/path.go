package route

import (
	"fmt"
	"strings"

	"github.com/graphroute/graphroute/core"
)

// Path is the result of a search: the vertices on the discovered path in
// start→target order, the total weight accumulated along it, and the IDs
// of every vertex the search visited (including vertices that did not end
// up on the path).
type Path[V core.Identifiable] struct {
	// Vertices lists the path from start to target. A start==target search
	// yields exactly one vertex.
	Vertices *List[V]

	// TotalWeight is the accumulated cost of the path. Weighted searches
	// sum the caller's weight function over consecutive edges; unweighted
	// searches count one per edge (hop count). Always 0 for a
	// single-vertex path.
	TotalWeight float64

	// Visited holds the ID of every vertex touched during the search.
	Visited map[string]struct{}
}

// NewPath creates an empty Path with no vertices and weight 0.
// Complexity: O(1)
func NewPath[V core.Identifiable]() *Path[V] {
	return &Path[V]{
		Vertices: NewList[V](),
		Visited:  make(map[string]struct{}),
	}
}

// MarkVisited records id in the visited set. Re-marking is a no-op.
// Complexity: O(1)
func (p *Path[V]) MarkVisited(id string) {
	p.Visited[id] = struct{}{}
}

// WasVisited reports whether id was recorded in the visited set.
// Complexity: O(1)
func (p *Path[V]) WasVisited(id string) bool {
	_, ok := p.Visited[id]

	return ok
}

// String renders the path as
// "Weight=2.00 Length=3 visited=4 (A, B, C)" for diagnostics and tests.
// Complexity: O(n)
func (p *Path[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weight=%.2f Length=%d visited=%d (",
		p.TotalWeight, p.Vertices.Len(), len(p.Visited))

	sep := ""
	for v := range p.Vertices.All() {
		b.WriteString(sep)
		b.WriteString(v.ID())
		sep = ", "
	}
	b.WriteString(")")

	return b.String()
}
