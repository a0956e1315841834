package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/graph"
)

func TestIsEmptyAndIsComplete(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.False(t, g.IsComplete())

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 2))
	assert.False(t, g.IsEmpty())
	assert.True(t, g.IsComplete())
}

func TestIsRegular(t *testing.T) {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	degree, ok := g.IsRegular()
	assert.True(t, ok)
	assert.Equal(t, 2, degree)

	require.NoError(t, g.AddEdge(0, 2))
	_, ok = g.IsRegular()
	assert.False(t, ok)
}

func TestDegreeSequence(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	assert.Equal(t, []int{2, 1, 1}, g.DegreeSequence())
}

func TestEdgeListSortedNoDuplicates(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(1, 0))

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, g.EdgeList())
}

func TestValidateAcceptsEdgelessGraph(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}

func TestStringRendersAdjacencyListing(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	assert.Equal(t, "0: 1\n1: 0\n", g.String())
}
