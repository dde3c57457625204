package layout_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ring(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i)))
	}
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(core.NodeID(i), core.NodeID((i+1)%n))
		require.NoError(t, err)
	}

	return g
}

func TestForceDirected_EmptyAndSingle(t *testing.T) {
	fd := layout.NewForceDirected(layout.DefaultOptions())
	assert.Empty(t, fd.Layout(core.NewGraph()))

	g := core.NewGraph()
	require.NoError(t, g.AddNode(100))
	pos := fd.Layout(g)
	assert.Equal(t, layout.Point{X: 400, Y: 300}, pos[100])
}

func TestForceDirected_InsideBoxAndComplete(t *testing.T) {
	opts := layout.DefaultOptions()
	g := ring(t, 12)
	_ = g.AddNode(50) // isolated

	pos := layout.NewForceDirected(opts).Layout(g)
	require.Len(t, pos, 13)
	for id, p := range pos {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "node %d", id)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, opts.Width)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, opts.Height)
	}
}

func TestForceDirected_Deterministic(t *testing.T) {
	g := ring(t, 8)
	opts := layout.DefaultOptions()
	opts.Seed = 99

	a := layout.NewForceDirected(opts).Layout(g)
	b := layout.NewForceDirected(opts).Layout(g)
	assert.Equal(t, a, b)
}

func TestForceDirected_NodesDoNotCollapse(t *testing.T) {
	g := ring(t, 6)
	pos := layout.NewForceDirected(layout.DefaultOptions()).Layout(g)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			a, b := pos[core.NodeID(i)], pos[core.NodeID(j)]
			assert.Greater(t, math.Hypot(a.X-b.X, a.Y-b.Y), 1.0, "%d and %d overlap", i, j)
		}
	}
}

func TestForceDirected_StopsWithinMaxIterations(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.MaxIterations = 5
	opts.Threshold = 0
	fd := layout.NewForceDirected(opts)
	fd.Layout(ring(t, 10))
	assert.LessOrEqual(t, fd.Iterations(), 5)
	assert.Equal(t, "force-directed", fd.Name())
}
