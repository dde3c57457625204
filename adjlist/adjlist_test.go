package adjlist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/graphptol/adjlist"
	"github.com/katalvlaran/graphptol/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_IsolatedNode(t *testing.T) {
	g, err := adjlist.Load(strings.NewReader("0 1\n1 0\n2"))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2}, g.Nodes())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}}, g.Edges())
}

func TestLoad_Variants(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantNodes []core.NodeID
		wantEdges []core.Edge
	}{
		{
			name:      "edge on one side only",
			in:        "0 1 2\n",
			wantNodes: []core.NodeID{0, 1, 2},
			wantEdges: []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}},
		},
		{
			name:      "comments blanks tabs",
			in:        "# written by hand\n\n5\t6   # trailing\n  6 7\n",
			wantNodes: []core.NodeID{5, 6, 7},
			wantEdges: []core.Edge{{U: 5, V: 6}, {U: 6, V: 7}},
		},
		{
			name:      "self reference ignored",
			in:        "4 4 3\n",
			wantNodes: []core.NodeID{3, 4},
			wantEdges: []core.Edge{{U: 3, V: 4}},
		},
		{
			name:      "only self reference keeps the node",
			in:        "9 9\n",
			wantNodes: []core.NodeID{9},
			wantEdges: []core.Edge{},
		},
		{
			name:      "negative ids",
			in:        "-1 2\n",
			wantNodes: []core.NodeID{-1, 2},
			wantEdges: []core.Edge{{U: -1, V: 2}},
		},
		{
			name:      "empty",
			in:        "",
			wantNodes: []core.NodeID{},
			wantEdges: []core.Edge{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := adjlist.Load(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, g.Nodes())
			assert.Equal(t, tc.wantEdges, g.Edges())
		})
	}
}

func TestLoad_BadToken(t *testing.T) {
	for _, in := range []string{"0 a\n", "x\n", "0 1.5\n"} {
		_, err := adjlist.Load(strings.NewReader(in))
		assert.ErrorIs(t, err, adjlist.ErrBadToken, in)
	}
}

func TestLines(t *testing.T) {
	g, err := adjlist.Load(strings.NewReader("0 1 2\n1 2\n3\n"))
	require.NoError(t, err)

	full, err := adjlist.Lines(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1 2", "1 0 2", "2 0 1", "3"}, full)

	compact, err := adjlist.Lines(g, adjlist.WithCompact(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1 2", "1 2", "2", "3"}, compact)

	_, err = adjlist.Lines(nil)
	assert.ErrorIs(t, err, adjlist.ErrGraphNil)
}

func TestWrite_RoundTrip(t *testing.T) {
	in := "0 1\n1 0 7\n2\n7 1\n"
	g, err := adjlist.Load(strings.NewReader(in))
	require.NoError(t, err)

	for _, compact := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, adjlist.Write(&buf, g,
			adjlist.WithCompact(compact),
			adjlist.WithHeader("graphptol", "round trip"),
		))
		assert.True(t, strings.HasPrefix(buf.String(), "# graphptol\n# round trip\n"))

		back, err := adjlist.Load(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.Nodes(), back.Nodes(), "compact=%v", compact)
		assert.Equal(t, g.Edges(), back.Edges(), "compact=%v", compact)
	}
}
