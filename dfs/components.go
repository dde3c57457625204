package dfs

import (
	"sort"

	"github.com/katalvlaran/graphptol/core"
)

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest node.
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var (
		out  [][]core.NodeID
		comp []core.NodeID
	)
	for _, root := range g.Nodes() {
		if len(out) > 0 && contains(out, root) {
			continue
		}
		comp = comp[:0]
		_, err := DFS(g, root, WithOnVisit(func(id core.NodeID) error {
			comp = append(comp, id)
			return nil
		}))
		if err != nil {
			return nil, err
		}
		c := append([]core.NodeID(nil), comp...)
		sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
		out = append(out, c)
	}

	return out, nil
}

// contains reports whether id already belongs to one of the sorted components.
func contains(comps [][]core.NodeID, id core.NodeID) bool {
	for _, c := range comps {
		i := sort.Search(len(c), func(k int) bool { return c[k] >= id })
		if i < len(c) && c[i] == id {
			return true
		}
	}

	return false
}
