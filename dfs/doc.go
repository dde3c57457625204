// Package dfs provides depth-first traversal over core.Graph together with the
// two whole-graph queries built on it: Components and FindCycle.
//
// Example:
//
//	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
//	// res.Roots holds one root per connected component.
//
//	ok, cycle, err := dfs.FindCycle(g)
//	// cycle is a closed walk such as [0 1 2 0].
package dfs
