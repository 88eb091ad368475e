// Type declarations only; mutations live in graph.go and queries in
// methods.go.

package core

import "reflect"

// Identifiable is the minimal capability a vertex type must provide:
// a stable string identifier, unique within one graph and immutable for
// the lifetime of the vertex.
//
// Graph storage, equality, and hashing are defined solely by ID(); two
// vertex values reporting the same ID denote the same graph vertex,
// whatever their other attributes are.
type Identifiable interface {
	// ID returns the unique identifier of the vertex.
	ID() string
}

// Graph is a weighted directed graph over caller-defined vertex and edge
// types.
//
// V is any vertex type satisfying Identifiable; E is an opaque edge
// payload (distance record, speed limit, label — the graph never looks
// inside). Both maps are keyed by vertex ID, never by structural equality.
type Graph[V Identifiable, E any] struct {
	// vertices catalogs every vertex by its unique ID.
	vertices map[string]V

	// adjacency maps fromID → toID → edge payload. Every cataloged vertex
	// has an entry here, possibly empty.
	adjacency map[string]map[string]E
}

// New creates an empty directed graph.
// Complexity: O(1)
func New[V Identifiable, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices:  make(map[string]V),
		adjacency: make(map[string]map[string]E),
	}
}

// isNil reports whether x is nil, including typed nils stored inside
// interfaces (nil *T, nil map, nil slice, nil func).
func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
