// SPDX-License-Identifier: MIT

// Package builder generates standard undirected topologies as core.Graph
// values: paths, cycles, stars, wheels, complete and complete bipartite
// graphs, grids and seeded random sparse graphs.
//
// Constructors are composed through BuildGraph:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithFirstID(100)},
//		builder.Cycle(6),
//	)
//
// Vertex index i becomes NodeID(first+i). Output is deterministic for the same
// constructors, options and seed, which makes generated graphs usable as test
// fixtures and as sample input files for the CLI.
package builder
