package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/graphroute/graphroute/bfs"
	"github.com/graphroute/graphroute/core"
	"github.com/graphroute/graphroute/route"
)

// waypoint is the vertex type used across bfs tests.
type waypoint struct {
	name string
}

func (w waypoint) ID() string { return w.name }

// build creates a graph from directed "from→to" pairs.
func build(pairs ...[2]string) *core.Graph[waypoint, string] {
	g := core.New[waypoint, string]()
	for _, p := range pairs {
		g.AddEdge(waypoint{p[0]}, waypoint{p[1]}, p[0]+"-"+p[1])
	}

	return g
}

func pathIDs(p *route.Path[waypoint]) []string {
	ids := make([]string, 0, p.Vertices.Len())
	for v := range p.Vertices.All() {
		ids = append(ids, v.ID())
	}

	return ids
}

func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[waypoint, string](nil, "A", "B"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := build([2]string{"A", "B"})
	if _, err := bfs.BFS(g, "missing", "B"); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", "missing"); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Errorf("missing target: want ErrVertexNotFound, got %v", err)
	}
	// Both unknown-vertex failures are no-path outcomes.
	if _, err := bfs.BFS(g, "missing", "B"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("missing start: want errors.Is(err, ErrNoPath), got %v", err)
	}
}

func TestBFS_StartEqualsTarget(t *testing.T) {
	g := build([2]string{"A", "B"})

	p, err := bfs.BFS(g, "A", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pathIDs(p), []string{"A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
	if p.TotalWeight != 0 {
		t.Errorf("TotalWeight = %f; want 0", p.TotalWeight)
	}
}

func TestBFS_PrefersFewestHops(t *testing.T) {
	// A→B→C is two hops; the direct A→C edge is one hop. BFS must take
	// the direct edge regardless of which is "cheaper" by any weighting.
	g := build(
		[2]string{"A", "B"},
		[2]string{"B", "C"},
		[2]string{"A", "C"},
	)

	p, err := bfs.BFS(g, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pathIDs(p), []string{"A", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
	if p.TotalWeight != 1 {
		t.Errorf("TotalWeight = %f; want 1 (hop count)", p.TotalWeight)
	}
}

func TestBFS_MinimalHopCountOnLayeredGraph(t *testing.T) {
	// Two routes to G: A→B→D→G (3 hops) and A→C→G (2 hops).
	g := build(
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "D"},
		[2]string{"D", "G"},
		[2]string{"C", "G"},
	)

	p, err := bfs.BFS(g, "A", "G")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pathIDs(p), []string{"A", "C", "G"}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
	if p.TotalWeight != 2 {
		t.Errorf("TotalWeight = %f; want 2", p.TotalWeight)
	}
}

func TestBFS_VisitedMarksEnqueuedVertices(t *testing.T) {
	// B is enqueued in the first layer even though the path goes via C.
	g := build(
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"C", "T"},
	)

	p, err := bfs.BFS(g, "A", "T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"A", "B", "C", "T"} {
		if !p.WasVisited(id) {
			t.Errorf("expected %q in the visited set", id)
		}
	}
}

func TestBFS_NoDoubleEnqueueOnCycle(t *testing.T) {
	// A diamond closing back to A; visited-at-enqueue must keep the
	// frontier finite and the counts exact.
	g := build(
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "A"},
		[2]string{"C", "B"},
		[2]string{"B", "T"},
	)

	enqueues := map[string]int{}
	p, err := bfs.BFS(g, "A", "T", bfs.WithOnEnqueue(func(id string, depth int) {
		enqueues[id]++
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, n := range enqueues {
		if n > 1 {
			t.Errorf("vertex %q enqueued %d times; want at most once", id, n)
		}
	}
	if got, want := pathIDs(p), []string{"A", "B", "T"}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
}

func TestBFS_UnreachableTarget(t *testing.T) {
	g := build([2]string{"A", "B"}, [2]string{"T", "A"})

	if _, err := bfs.BFS(g, "A", "T"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

func TestBFS_FilterNeighborBlocksPath(t *testing.T) {
	g := build([2]string{"A", "B"}, [2]string{"B", "C"})

	_, err := bfs.BFS(g, "A", "C", bfs.WithFilterNeighbor(func(id string) bool {
		return id != "B"
	}))
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}
