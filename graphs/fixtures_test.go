package graphs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/graphs"
)

func TestComplete(t *testing.T) {
	g, err := graphs.Complete(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.N())
	assert.Equal(t, 10, g.M())
	require.NoError(t, g.Validate())
}

func TestComplete_RejectsTooFew(t *testing.T) {
	_, err := graphs.Complete(0)
	assert.ErrorIs(t, err, graphs.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := graphs.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.M())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
}

func TestCycle(t *testing.T) {
	g, err := graphs.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.M())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
}

func TestStar(t *testing.T) {
	g, err := graphs.Star(6)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Degree(0))
	for v := 1; v < 6; v++ {
		assert.Equal(t, 1, g.Degree(v))
	}
}

func TestWheel(t *testing.T) {
	g, err := graphs.Wheel(6)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Degree(0))
	for v := 1; v < 6; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestPetersen(t *testing.T) {
	g, err := graphs.Petersen()
	require.NoError(t, err)
	assert.Equal(t, 10, g.N())
	assert.Equal(t, 15, g.M())
	for v := 0; v < 10; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
	require.NoError(t, g.Validate())
}

func TestRandomRegular(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := graphs.RandomRegular(10, 3, rng)
	require.NoError(t, err)
	for v := 0; v < 10; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
	require.NoError(t, g.Validate())
}

func TestRandomRegular_RejectsOddProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := graphs.RandomRegular(5, 3, rng)
	assert.ErrorIs(t, err, graphs.ErrConstructFailed)
}

func TestRandomRegular_RequiresRNG(t *testing.T) {
	_, err := graphs.RandomRegular(10, 3, nil)
	assert.ErrorIs(t, err, graphs.ErrNeedRandSource)
}

func TestRandomSparse_DeterministicAtExtremes(t *testing.T) {
	g0, err := graphs.RandomSparse(5, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g0.M())

	g1, err := graphs.RandomSparse(5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, g1.M())
}

func TestRandomSparse_RequiresRNGForMidProbability(t *testing.T) {
	_, err := graphs.RandomSparse(5, 0.5, nil)
	assert.ErrorIs(t, err, graphs.ErrNeedRandSource)
}

func TestRandomSparse_RejectsBadProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := graphs.RandomSparse(5, 1.5, rng)
	assert.ErrorIs(t, err, graphs.ErrInvalidProbability)
}
