// Package graphptol is a small toolkit for undirected, unweighted graphs:
// build them by hand or from standard topologies, find minimum-hop paths,
// and move them between adjacency matrix and adjacency list files.
//
// Layout:
//
//	core       thread-safe Graph over integer NodeIDs
//	bfs        breadth-first search and shortest paths
//	dfs        depth-first search, components, cycle detection
//	matrix     adjacency matrix text codec
//	adjlist    adjacency list text codec
//	builder    path, cycle, star, wheel, complete, grid and random graphs
//	model      the editable graph: auto IDs, strict edges, atomic loads
//	layout     force-directed 2D placement
//	render     SVG and ASCII drawings with a highlighted path
//
// The graphptol command (cmd/graphptol) wraps these in a CLI and an
// interactive terminal editor.
package graphptol
