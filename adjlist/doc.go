// Package adjlist reads and writes the adjacency-list text format.
//
// Format:
//
//	0 1 2
//	1 0
//	2 0
//	3
//
//   - One line per node: the node ID followed by zero or more neighbor IDs.
//   - Tokens are decimal integers separated by any run of whitespace.
//   - Blank lines and text after '#' are ignored.
//   - An edge {a,b} needs to appear on only one of the two lines; a neighbor
//     that has no line of its own is still a node.
//   - Self references ("4 4") are ignored: graphs here carry no self-loops.
//
// Writing emits every node in ascending order with its full, ascending
// neighbor list. WithCompact switches to the networkx style where each edge
// is written once, on the line of its smaller-ordered endpoint. Both forms
// read back to the same graph.
package adjlist
