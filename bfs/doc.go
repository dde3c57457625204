// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - ShortestPath(g, from, to) wraps BFS + PathTo for the common query.
//   - OnVisit hook, called per node in visit order; may abort with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS discovers them in
//	that order, so the visit sequence and the chosen shortest path are reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log d)   (neighbor lists are sorted per node)
//   - Memory: O(V)             (frontiers, Depth map, Parent map)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, 0, 2)
//	if errors.Is(err, bfs.ErrNoPath) {
//		// different components
//	}
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrNoPath             if the destination is absent or unreachable.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors          if core.Neighbors fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
