// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphptol/core"
)

// AdjacencyMatrix is a symmetric 0/1 view of an undirected graph.
//
// Order[i] is the NodeID represented by row/column i; Data[i][j] == 1 iff
// {Order[i], Order[j]} is an edge. The diagonal is always zero.
type AdjacencyMatrix struct {
	Order []core.NodeID
	Data  [][]int
	index map[core.NodeID]int
}

// NewAdjacencyMatrix builds the matrix of g with rows in g.Nodes() order.
//
// Complexity: O(V² + E log E) time, O(V²) memory.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := g.Nodes()
	n := len(order)
	idx := make(map[core.NodeID]int, n)
	for i, id := range order {
		idx[id] = i
	}

	data := make([][]int, n)
	for i := range data {
		data[i] = make([]int, n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.U], idx[e.V]
		data[i][j] = 1
		data[j][i] = 1
	}

	return &AdjacencyMatrix{Order: order, Data: data, index: idx}, nil
}

// Index returns the row/column of id.
func (am *AdjacencyMatrix) Index(id core.NodeID) (int, bool) {
	if am == nil {
		return 0, false
	}
	i, ok := am.index[id]

	return i, ok
}

// Size returns the number of rows (= columns).
func (am *AdjacencyMatrix) Size() int {
	if am == nil {
		return 0
	}

	return len(am.Order)
}

// ToGraph rebuilds a core.Graph with the original NodeIDs from Order.
func (am *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	n := len(am.Order)
	if len(am.Data) != n {
		return nil, fmt.Errorf("ToGraph: rows=%d order=%d: %w", len(am.Data), n, ErrNonSquare)
	}
	g := core.NewGraph(core.WithCapacity(n))
	for _, id := range am.Order {
		_ = g.AddNode(id)
	}
	for i := 0; i < n; i++ {
		if len(am.Data[i]) != n {
			return nil, fmt.Errorf("ToGraph: row %d: %w", i, ErrNonSquare)
		}
		for j := i + 1; j < n; j++ {
			if am.Data[i][j] != 0 || am.Data[j][i] != 0 {
				if _, err := g.AddEdge(am.Order[i], am.Order[j]); err != nil {
					return nil, fmt.Errorf("ToGraph: %w", err)
				}
			}
		}
	}

	return g, nil
}

// Encode writes the matrix in text form.
func (am *AdjacencyMatrix) Encode(w io.Writer) error {
	if am == nil {
		return ErrNilMatrix
	}

	return Write(w, am.Data)
}

// FromRows interprets a square numeric matrix as an undirected graph over
// nodes 0..n-1. (i,j) or (j,i) nonzero ⇒ edge {i,j}.
//
// Nonzero diagonal entries are dropped without error since core.Graph has no
// self-loops, so such a matrix does not survive a Load/Encode round trip
// byte for byte: the diagonal comes back as zeros.
//
// Errors: ErrNonSquare.
func FromRows(rows [][]float64) (*core.Graph, error) {
	if err := validateSquare(rows); err != nil {
		return nil, err
	}
	n := len(rows)
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_ = g.AddNode(core.NodeID(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != 0 || rows[j][i] != 0 {
				if _, err := g.AddEdge(core.NodeID(i), core.NodeID(j)); err != nil {
					return nil, fmt.Errorf("FromRows: %w", err)
				}
			}
		}
	}

	return g, nil
}

// Load reads a matrix from r and converts it with FromRows, dropping any
// nonzero diagonal entries.
func Load(r io.Reader) (*core.Graph, error) {
	rows, err := Read(r)
	if err != nil {
		return nil, err
	}

	return FromRows(rows)
}
