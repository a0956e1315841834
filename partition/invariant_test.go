package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/partition"
)

func TestShapeInvariant(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0, 1}, {2}, {3, 4, 5}})
	require.NoError(t, err)

	assert.Equal(t, partition.Invariant{2, 1, 3}, p.ShapeInvariant())
}

func TestShapeInvariant_DiscreteIsLeafSentinel(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0}, {1}, {2}})
	require.NoError(t, err)

	assert.Equal(t, partition.LeafInvariant, p.ShapeInvariant())
}

func TestNumCellsInvariant(t *testing.T) {
	p, err := partition.NewFromCells([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, partition.Invariant{2}, p.NumCellsInvariant())
}

func TestInvariant_LessIsLexicographic(t *testing.T) {
	a := partition.Invariant{1, 2}
	b := partition.Invariant{1, 3}
	c := partition.Invariant{1, 2, 0}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c)) // prefix is smaller than its extension
	assert.False(t, c.Less(a))
}

func TestInvariant_LeafDominatesAnyNonLeaf(t *testing.T) {
	nonLeaf := partition.Invariant{1000000, 1000000}
	assert.True(t, nonLeaf.Less(partition.LeafInvariant))
}

func TestRefInvariant_DisabledByDefault(t *testing.T) {
	g := path4(t)
	p, err := partition.NewUnit(4)
	require.NoError(t, err)
	require.NoError(t, p.Refine(g, nil))

	assert.Empty(t, p.RefInvariant())
}

func TestRefInvariant_CollectsWhenEnabled(t *testing.T) {
	g := path4(t)
	p, err := partition.NewUnit(4)
	require.NoError(t, err)
	require.NoError(t, p.Refine(g, nil)) // level 1

	p.SetRefInvarEnabled(true)
	require.NoError(t, p.SplitAndRefine(g, 0))

	assert.NotEmpty(t, p.RefInvariant())
}
