// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// Concurrency:
//   - Node catalog and adjacency are protected by mu.
package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, check presence.
//   - Stage 2: If missing, register the node and bootstrap its empty adjacency bucket.
//
// Behavior highlights:
//   - Idempotent: adding an existing node is a no-op.
//   - Any int is a valid NodeID, so AddNode never fails today; the error return keeps
//     the signature aligned with AddEdge for callers that chain both.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	addNodeLocked(g, id)

	return nil
}

// addNodeLocked registers id; caller holds mu for writing.
func addNodeLocked(g *Graph, id NodeID) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[NodeID]struct{})
}

// HasNode reports whether the node exists.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V) for the returned slice.
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adjacency[id]), nil
}
