package dfs

import (
	"errors"

	"github.com/katalvlaran/graphptol/core"
)

// errCycleFound stops the walk at the first back edge.
var errCycleFound = errors.New("dfs: cycle found")

// FindCycle reports whether g contains a cycle and, if so, returns one as a
// closed walk [v0 v1 ... vk v0]. Roots and neighbors are taken in ascending
// order, so the same graph always yields the same cycle.
//
// In an undirected simple graph, a node discovered with an on-stack neighbor
// other than its parent closes a cycle through that ancestor.
func FindCycle(g *core.Graph) (bool, []core.NodeID, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	var (
		w       *dfsWalker
		cycle   []core.NodeID
		onStack = make(map[core.NodeID]bool)
	)
	opts := DefaultOptions()
	opts.OnVisit = func(id core.NodeID) error {
		onStack[id] = true
		nbs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		parent, hasParent := w.res.Parent[id]
		for _, n := range nbs {
			if hasParent && n == parent {
				continue
			}
			if onStack[n] {
				cycle = closeCycle(w.res.Parent, n, id)
				return errCycleFound
			}
		}
		return nil
	}
	opts.OnExit = func(id core.NodeID) error {
		onStack[id] = false
		return nil
	}

	nodes := g.Nodes()
	w = &dfsWalker{graph: g, opts: opts, res: newResult(len(nodes))}
	for _, v := range nodes {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			if errors.Is(err, errCycleFound) {
				return true, cycle, nil
			}
			return false, nil, err
		}
	}

	return false, nil, nil
}

// closeCycle walks parent links from tail up to ancestor and returns
// [ancestor ... tail ancestor].
func closeCycle(parent map[core.NodeID]core.NodeID, ancestor, tail core.NodeID) []core.NodeID {
	up := []core.NodeID{tail}
	for v := tail; v != ancestor; {
		v = parent[v]
		up = append(up, v)
	}
	out := make([]core.NodeID, 0, len(up)+1)
	for i := len(up) - 1; i >= 0; i-- {
		out = append(out, up[i])
	}

	return append(out, ancestor)
}
