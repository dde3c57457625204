// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Components and FindCycle built on the same walker
//
// Neighbors are explored in ascending NodeID order, so results are deterministic.
//
// Complexity:
//
//   - Time:   O(V + E log d) (neighbor lists are returned sorted).
//   - Memory: O(V) for recursion and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphptol/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over every component
// when WithFullTraversal is given (start is then ignored).
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	nodes := g.Nodes()
	res := newResult(len(nodes))
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	roots := []core.NodeID{start}
	if dopts.FullTraversal {
		roots = nodes
	}
	for _, v := range roots {
		if res.Visited[v] {
			continue
		}
		res.Roots = append(res.Roots, v)
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

func newResult(n int) *DFSResult {
	return &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make(map[core.NodeID]int, n),
		Parent:  make(map[core.NodeID]core.NodeID, n),
		Visited: make(map[core.NodeID]bool, n),
	}
}

// traverse visits id at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Neighbors(%s): %w", id, err)
	}

	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %s: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
