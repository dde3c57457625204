// Package core defines the Graph, NodeID and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares NodeID, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrLoopNotAllowed - self-loop attempted; graphs here never carry loops.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID identifies a node within a Graph.
type NodeID int

// String returns the decimal form used in files and UI selectors.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// ParseNodeID parses the decimal form produced by NodeID.String.
func ParseNodeID(s string) (NodeID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	return NodeID(n), nil
}

// Edge is an unordered pair of distinct nodes.
// Edges returned by Graph always satisfy U < V.
type Edge struct {
	U NodeID
	V NodeID
}

// normalizeEdge orders the endpoints so that U < V.
func normalizeEdge(u, v NodeID) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and adjacency maps for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory undirected, unweighted graph.
//
// mu protects nodes, adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	capacity int // construction-time size hint

	// nodes is the node catalog; every key also has a (possibly empty) adjacency bucket.
	nodes map[NodeID]struct{}

	// adjacency[u][v] = struct{}{} for every edge {u,v}, stored in both directions.
	adjacency map[NodeID]map[NodeID]struct{}

	// edgeCount counts unordered pairs, not adjacency entries.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the capacity hint, if given).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[NodeID]struct{}, g.capacity)
	g.adjacency = make(map[NodeID]map[NodeID]struct{}, g.capacity)

	return g
}
