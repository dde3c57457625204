// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: nodes, adjacency and edge count.
// The clone shares no maps with the source, so renderers and exporters can
// hold it while the source keeps changing.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.nodes)))
	for id, nbrs := range g.adjacency {
		clone.nodes[id] = struct{}{}
		bucket := make(map[NodeID]struct{}, len(nbrs))
		for nbr := range nbrs {
			bucket[nbr] = struct{}{}
		}
		clone.adjacency[id] = bucket
	}
	clone.edgeCount = g.edgeCount

	return clone
}
