package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/graph"
	"github.com/haneytron/nautigo/partition"
)

func TestSelectTargetCell_RejectsDiscrete(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0}, {1}, {2}})
	require.NoError(t, err)

	_, _, err = p.SelectTargetCell(partition.First, nil)
	assert.ErrorIs(t, err, partition.ErrNoNonSingletonCell)
}

func TestSelectTargetCell_First(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0}, {1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	first, length, err := p.SelectTargetCell(partition.First, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, length)
}

func TestSelectTargetCell_FirstSmallest(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0, 1, 2}, {3, 4}})
	require.NoError(t, err)

	first, length, err := p.SelectTargetCell(partition.FirstSmallest, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, 2, length)
}

func TestSelectTargetCell_FirstSmallest_PrefersFirstAmongTies(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0, 1}, {2, 3, 4}, {5, 6}})
	require.NoError(t, err)

	first, length, err := p.SelectTargetCell(partition.FirstSmallest, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, length)
}

func TestSelectTargetCell_Joins(t *testing.T) {
	// Two cells {0,1} and {2,3}, joined by a single edge 0-2: deg(0,{2,3})=1
	// is strictly between 0 and |{2,3}|=2, so the cells are non-trivially
	// joined (using each cell's first element as its equitable representative).
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))

	p, err := partition.NewFromCells([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	first, length, err := p.SelectTargetCell(partition.Joins, g)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, length)
}
