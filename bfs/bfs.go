// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphptol/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any error returned by the OnVisit hook.
//
// The search advances one depth level at a time: every node of the current
// frontier is visited, in the order it was discovered, before the next
// frontier is expanded. A node's Depth entry doubles as its seen mark.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	res := &BFSResult{
		Start:  start,
		Order:  make([]core.NodeID, 0, n),
		Depth:  map[core.NodeID]int{start: 0},
		Parent: make(map[core.NodeID]core.NodeID, n),
	}

	frontier := []core.NodeID{start}
	for depth := 0; len(frontier) > 0; depth++ {
		expand := o.MaxDepth == 0 || depth < o.MaxDepth
		var next []core.NodeID
		for _, id := range frontier {
			if err := o.Ctx.Err(); err != nil {
				return res, err
			}
			res.Order = append(res.Order, id)
			if err := o.OnVisit(id, depth); err != nil {
				return res, fmt.Errorf("bfs: OnVisit error at %s: %w", id, err)
			}
			if !expand {
				continue
			}

			neighbors, err := g.Neighbors(id)
			if err != nil {
				return res, fmt.Errorf("%w: failed to get neighbors of %s: %v", ErrNeighbors, id, err)
			}
			for _, nbr := range neighbors {
				if _, seen := res.Depth[nbr]; seen || !o.FilterNeighbor(id, nbr) {
					continue
				}
				res.Depth[nbr] = depth + 1
				res.Parent[nbr] = id
				next = append(next, nbr)
			}
		}
		frontier = next
	}

	return res, nil
}

// ShortestPath returns a minimum-edge-count path from → to, endpoints included.
// from == to yields the single-element path.
// Neighbors are expanded in ascending ID order, so ties always resolve the same way.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, ErrNoPath (unknown or unreachable
// destination), plus anything BFS itself returns.
func ShortestPath(g *core.Graph, from, to core.NodeID, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoPath, from, to)
	}
	res, err := BFS(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}
