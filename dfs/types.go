// Types and options for depth-first traversal: cancellation, pre-/post-order
// hooks, depth limiting, neighbor filtering, forest mode and diagnostics.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphptol/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Components or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked on discovery (pre-order). An error aborts traversal.
	OnVisit func(id core.NodeID) error

	// OnExit is invoked after all descendants are explored (post-order),
	// before the node is appended to Order. An error aborts traversal.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the start.
	MaxDepth int

	// FilterNeighbor returns false to skip a neighbor.
	FilterNeighbor func(id core.NodeID) bool

	// FullTraversal restarts from every unvisited node in ascending order.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component (forest traversal).
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in finishing sequence (post-order).
	Order []core.NodeID

	// Depth maps each node to its tree depth.
	Depth map[core.NodeID]int

	// Parent maps each node to the node it was discovered from.
	// Tree roots are absent.
	Parent map[core.NodeID]core.NodeID

	// Visited flags reached nodes.
	Visited map[core.NodeID]bool

	// Roots lists the start node of every DFS tree, in traversal order.
	Roots []core.NodeID

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
