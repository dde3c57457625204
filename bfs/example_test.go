package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphptol/bfs"
	"github.com/katalvlaran/graphptol/core"
)

// ExampleShortestPath finds the fewest-hop route between two nodes of a small network.
// Two competing routes exist from 0 to 10: 0–1–2–3–10 and 0–4–5–10.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []core.NodeID{0, 1, 2, 3, 4, 5, 10} {
		_ = g.AddNode(id)
	}
	for _, e := range [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 10}, {0, 4}, {4, 5}, {5, 10}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	path, err := bfs.ShortestPath(g, 0, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleBFS_DepthLimitOnChain shows applying WithMaxDepth to a linear chain.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := 0; i < 10; i++ {
		_ = g.AddNode(core.NodeID(i))
		if i > 0 {
			_, _ = g.AddEdge(core.NodeID(i-1), core.NodeID(i))
		}
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}
