// Package core provides the in-memory Graph used by every other graphptol package:
// an undirected, unweighted graph over integer node identifiers.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are NodeID (int) values, unique within a graph.
//   - Edges are unordered pairs {u,v} with u != v; self-loops are rejected.
//   - Adding an edge that already exists is a no-op (no multi-edges).
//   - Adjacency is stored as nested sets: adjacency[u][v] = struct{}{} and the mirror
//     adjacency[v][u], so HasEdge and AddEdge are O(1).
//   - A single sync.RWMutex guards nodes and adjacency; queries take the read lock.
//
// Determinism:
//
//	Nodes(), Neighbors() and Edges() return results in ascending NodeID order, so
//	BFS tie-breaking, matrix exports and list exports are reproducible.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id NodeID) error              // O(1), idempotent
//	HasNode(id NodeID) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID) (bool, error)    // O(1); false if the edge already existed
//	HasEdge(u, v NodeID) bool             // O(1)
//
//	// Query
//	Neighbors(id NodeID) ([]NodeID, error) // O(d log d)
//	Nodes() []NodeID                       // O(V log V)
//	Edges() []Edge                         // O(E log E)
//	Degree(id NodeID) (int, error)         // O(1)
//	NodeCount(), EdgeCount() int           // O(1)
//
//	// Cloning
//	Clone() *Graph                         // O(V+E)
//
// Errors:
//
//	ErrNodeNotFound   – operation references a node that is not in the graph
//	ErrLoopNotAllowed – AddEdge(v, v)
package core
