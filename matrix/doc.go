// Package matrix reads, writes and converts adjacency matrices.
//
// Text format (the same one numpy's loadtxt/savetxt speak):
//
//	0 1 0
//	1 0 1
//	0 1 0
//
//   - One row per line, cells separated by any run of whitespace.
//   - Blank lines and text after '#' are ignored.
//   - Any finite number is accepted on input; nonzero means "edge".
//   - Output cells are always 0 or 1 separated by a single space.
//
// Conversion rules:
//
//   - FromRows interprets an n×n matrix over nodes 0..n-1. Entry (i,j) or (j,i)
//     nonzero ⇒ edge {i,j}; asymmetric input is therefore accepted.
//   - Diagonal entries are ignored: graphs here carry no self-loops.
//   - NewAdjacencyMatrix orders rows/columns by core.Graph.Nodes() (ascending),
//     and Order records which NodeID each index stands for.
//
// Round trip: FromRows(Read(Write(NewAdjacencyMatrix(g)))) has the same edge
// set as g, modulo renumbering of nodes to 0..n-1.
package matrix
