// Sentinel errors and options for the weighted shortest-path search.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Dijkstra execution. ErrVertexNotFound wraps
// ErrNoPath so that errors.Is(err, ErrNoPath) holds for every no-path
// outcome.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNilWeightFunc is returned if the weight function is nil.
	ErrNilWeightFunc = errors.New("dijkstra: weight function is nil")

	// ErrNoPath is returned when no directed path leads from start to target.
	ErrNoPath = errors.New("dijkstra: no path between start and target")

	// ErrVertexNotFound is returned when the start or target ID is not in
	// the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrNoPath)

	// ErrBadMaxDistance signals a negative WithMaxDistance argument.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Option configures Dijkstra behavior via functional arguments.
// Use with Dijkstra(g, startID, targetID, weight, opts...).
type Option func(*Options)

// Options holds configurable parameters for a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose cumulative weight would
	// exceed it are not settled. Default is +Inf (no cap). A target beyond
	// the cap is reported as ErrNoPath.
	MaxDistance float64
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}

// WithMaxDistance caps the cumulative weight up to which vertices are
// explored. Must be non-negative; negative values panic with
// ErrBadMaxDistance, signalling invalid configuration early.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}
