package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [][]float64
		wantErr error
	}{
		{name: "two by two", in: "0 1\n1 0\n", want: [][]float64{{0, 1}, {1, 0}}},
		{name: "floats and tabs", in: "0.0\t1.0\n1e0   0\n", want: [][]float64{{0, 1}, {1, 0}}},
		{name: "comments and blanks", in: "# header\n\n0 1 # row zero\n1 0\n\n", want: [][]float64{{0, 1}, {1, 0}}},
		{name: "empty", in: "", want: nil},
		{name: "single cell", in: "0\n", want: [][]float64{{0}}},
		{name: "non numeric", in: "0 x\n1 0\n", wantErr: matrix.ErrNonNumeric},
		{name: "ragged", in: "0 1\n1\n", wantErr: matrix.ErrBadShape},
		{name: "not square", in: "0 1 0\n1 0 1\n", wantErr: matrix.ErrNonSquare},
		{name: "nan", in: "0 NaN\n1 0\n", wantErr: matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Read(strings.NewReader(tc.in))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromRows_Asymmetric(t *testing.T) {
	// only the upper entry of {0,2} and the lower entry of {1,2} are set
	g, err := matrix.FromRows([][]float64{
		{0, 0, 1},
		{0, 0, 0},
		{0, 2, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, g.Nodes())
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 1, V: 2}}, g.Edges())
}

func TestFromRows_IgnoresDiagonal(t *testing.T) {
	g, err := matrix.FromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoad_DiagonalDoesNotRoundTrip(t *testing.T) {
	in := "1 1\n1 0\n"
	rows, err := matrix.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1.0, rows[0][0], "Read keeps the diagonal")

	g, err := matrix.Load(strings.NewReader(in))
	require.NoError(t, err)
	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, am.Encode(&buf))
	assert.Equal(t, "0 1\n1 0\n", buf.String())
}

func TestAdjacencyMatrix_TwoNodeExample(t *testing.T) {
	g, err := matrix.Load(strings.NewReader("0 1\n1 0\n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, am.Data)

	var buf bytes.Buffer
	require.NoError(t, am.Encode(&buf))
	assert.Equal(t, "0 1\n1 0\n", buf.String())
}

func TestAdjacencyMatrix_OrderFollowsNodes(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{101, 0, 100} {
		require.NoError(t, g.AddNode(id))
	}
	_, err := g.AddEdge(0, 101)
	require.NoError(t, err)

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 100, 101}, am.Order)
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}}, am.Data)

	i, ok := am.Index(101)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, am.Size())

	back, err := am.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestRoundTrip_TextPreservesEdges(t *testing.T) {
	in := "0 1 1 0\n1 0 0 0\n1 0 0 1\n0 0 1 0\n"
	g, err := matrix.Load(strings.NewReader(in))
	require.NoError(t, err)

	am, err := matrix.NewAdjacencyMatrix(g)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, am.Encode(&buf))
	assert.Equal(t, in, buf.String())

	g2, err := matrix.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), g2.Edges())
}

func TestNilGuards(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	var am *matrix.AdjacencyMatrix
	_, err = am.ToGraph()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.ErrorIs(t, am.Encode(&bytes.Buffer{}), matrix.ErrNilMatrix)
	assert.Equal(t, 0, am.Size())
}
