// Sentinel errors and options for breadth-first search.

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution. ErrVertexNotFound wraps ErrNoPath so
// that errors.Is(err, ErrNoPath) holds for every no-path outcome.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned when no directed path leads from start to target.
	ErrNoPath = errors.New("bfs: no path between start and target")

	// ErrVertexNotFound is returned when the start or target ID is not in
	// the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrNoPath)
)

// Option configures BFS behavior via functional arguments.
// Use with BFS(g, startID, targetID, opts...).
type Option func(*Options)

// Options holds configurable parameters for a BFS run.
type Options struct {
	// OnEnqueue, if non-nil, is invoked when a vertex enters the frontier,
	// with its depth (edge count) from the start.
	OnEnqueue func(id string, depth int)

	// FilterNeighbor, if non-nil, is called for each candidate neighbor ID.
	// Return false to skip that neighbor entirely.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns Options with no hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      nil,
		FilterNeighbor: nil,
	}
}

// WithOnEnqueue installs fn as the frontier hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		o.OnEnqueue = fn
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
