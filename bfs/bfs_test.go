package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/graphptol/bfs"
	"github.com/katalvlaran/graphptol/core"
)

// build creates a graph with the given nodes and edges, failing the test on error.
func build(t testing.TB, nodes []core.NodeID, edges [][2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%d): %v", id, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// chain builds 0-1-...-(n-1).
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	nodes := make([]core.NodeID, n)
	edges := make([][2]core.NodeID, 0, n)
	for i := 0; i < n; i++ {
		nodes[i] = core.NodeID(i)
		if i > 0 {
			edges = append(edges, [2]core.NodeID{core.NodeID(i - 1), core.NodeID(i)})
		}
	}

	return build(t, nodes, edges)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartNodeNotFound) {
		t.Errorf("missing start: want ErrStartNodeNotFound, got %v", err)
	}
	g2 := build(t, []core.NodeID{0}, nil)
	if _, err := bfs.BFS(g2, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple 4-cycle and checks layering.
func TestCycleAndDepths(t *testing.T) {
	g := build(t, []core.NodeID{0, 1, 2, 3}, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[core.NodeID]int{0: 0, 1: 1, 3: 1, 2: 2} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%d] = %d; want %d", id, got, want)
		}
	}
	if _, ok := res.Parent[0]; ok {
		t.Errorf("start must not have a parent")
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, []core.NodeID{1, 2, 10, 11}, [][2]core.NodeID{{1, 2}, {10, 11}})

	resA, _ := bfs.BFS(g, 1)
	if !reflect.DeepEqual(resA.Order, []core.NodeID{1, 2}) {
		t.Errorf("From 1: got %v; want [1 2]", resA.Order)
	}
	resB, _ := bfs.BFS(g, 11)
	if !reflect.DeepEqual(resB.Order, []core.NodeID{11, 10}) {
		t.Errorf("From 11: got %v; want [11 10]", resB.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 3)
	cases := []struct {
		depth int
		want  []core.NodeID
	}{
		{1, []core.NodeID{0, 1}},
		{0, []core.NodeID{0, 1, 2}},
		{10, []core.NodeID{0, 1, 2}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
		}
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 3)
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []core.NodeID{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitOrder asserts that OnVisit sees every node once, in visit order, with its depth.
func TestBFS_OnVisitOrder(t *testing.T) {
	g := chain(t, 3)

	var vis []string
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, d int) error {
		vis = append(vis, id.String()+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"0@0", "1@1", "2@2"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}
	if len(vis) != len(res.Order) {
		t.Errorf("OnVisit calls = %d; want %d", len(vis), len(res.Order))
	}
}

// TestBFS_OnVisitAbort checks that a hook error stops the traversal and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := chain(t, 5)
	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := build(t, []core.NodeID{5}, nil)
	res, _ := bfs.BFS(g, 5)
	if path, _ := res.PathTo(5); !reflect.DeepEqual(path, []core.NodeID{5}) {
		t.Errorf("PathTo start: got %v; want [5]", path)
	}
	if _, err := res.PathTo(6); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath covers the documented examples and failure modes.
func TestShortestPath(t *testing.T) {
	g := build(t, []core.NodeID{0, 1, 2, 7}, [][2]core.NodeID{{0, 1}, {1, 2}})

	path, err := bfs.ShortestPath(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	if _, err := bfs.ShortestPath(g, 0, 7); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("disconnected: want ErrNoPath, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, 0, 99); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("absent destination: want ErrNoPath, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, 99, 0); !errors.Is(err, bfs.ErrStartNodeNotFound) {
		t.Errorf("absent start: want ErrStartNodeNotFound, got %v", err)
	}
}

// TestShortestPath_PrefersFewestHops puts a long and a short route side by side.
func TestShortestPath_PrefersFewestHops(t *testing.T) {
	g := build(t,
		[]core.NodeID{0, 1, 2, 3, 4, 5, 6},
		[][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 6}, {0, 4}, {4, 5}, {5, 6}},
	)
	path, err := bfs.ShortestPath(g, 0, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 4 {
		t.Fatalf("len(path) = %d; want 4 (%v)", len(path), path)
	}
	for i := 1; i < len(path); i++ {
		if !g.HasEdge(path[i-1], path[i]) {
			t.Errorf("path step %d-%d is not an edge", path[i-1], path[i])
		}
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
