package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/graph"
)

func TestNewGraph_RejectsNonPositiveN(t *testing.T) {
	_, err := graph.NewGraph(0)
	assert.ErrorIs(t, err, graph.ErrNegativeVertexCount)

	_, err = graph.NewGraph(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestAddEdge_RejectsLoopsAndOutOfRange(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(1, 1), graph.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 3), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrVertexOutOfRange)
}

func TestAddEdge_ParallelEdgesCollapse(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(0, 1))

	assert.Equal(t, 1, g.M())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
}

func TestAddEdge_SymmetricAndSorted(t *testing.T) {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.NoError(t, g.Validate())
}

func TestDegreeInto(t *testing.T) {
	g, err := graph.NewGraph(5)
	require.NoError(t, err)

	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	assert.Equal(t, 3, g.DegreeInto(0, []int{1, 2, 3, 4}))
	assert.Equal(t, 0, g.DegreeInto(4, []int{0, 2, 3}))
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	clone := g.Clone()
	require.NoError(t, clone.AddEdge(1, 2)) // must not show up in g

	assert.Equal(t, 1, g.M())
	assert.Equal(t, 2, clone.M())
	assert.True(t, clone.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
}

func TestRelabel(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	relabeled := g.Relabel([]int{2, 1, 0}) // reverse
	assert.True(t, relabeled.HasEdge(1, 2))
	assert.True(t, relabeled.HasEdge(0, 1))
	assert.Equal(t, 2, relabeled.M())
}
