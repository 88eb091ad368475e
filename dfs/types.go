// Sentinel errors and options for depth-first search.

package dfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution. ErrVertexNotFound wraps ErrNoPath so
// that errors.Is(err, ErrNoPath) holds for every no-path outcome; callers
// can still distinguish "unknown vertex" when they care.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNoPath is returned when no directed path leads from start to target.
	ErrNoPath = errors.New("dfs: no path between start and target")

	// ErrVertexNotFound is returned when the start or target ID is not in
	// the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrNoPath)
)

// Option configures DFS behavior via functional arguments.
// Use with DFS(g, startID, targetID, opts...).
type Option func(*Options)

// Options holds configurable parameters for a DFS run.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered,
	// before its neighbors are explored. Returning an error aborts the
	// search with that error.
	OnVisit func(id string) error

	// FilterNeighbor, if non-nil, is called for each candidate neighbor ID.
	// Return false to skip that neighbor entirely.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns Options with no hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		FilterNeighbor: nil,
	}
}

// WithOnVisit installs fn as the discovery hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
