package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneytron/nautigo/format"
)

func TestParse_EdgeList(t *testing.T) {
	in := "4\n0 1\n1 2\n2 3\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 2))
}

func TestParse_EdgeListCollapsesParallelEdges(t *testing.T) {
	in := "3\n0 1\n1 0\n0 1\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, g.M())
}

func TestParse_EdgeListRejectsSelfLoop(t *testing.T) {
	in := "2\n0 0\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrSelfLoop)
}

func TestParse_RowMatrix(t *testing.T) {
	in := "3\n010\n101\n010\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(0, 2))
}

func TestParse_RowMatrixSymmetrizesAsymmetricInput(t *testing.T) {
	// row 0 says edge to 1; row 1 says no edge back — still symmetrized.
	in := "2\n01\n00\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
}

func TestParse_RowMatrixRejectsSelfLoop(t *testing.T) {
	in := "2\n10\n01\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrSelfLoop)
}

func TestParse_RowMatrixRejectsTooFewRows(t *testing.T) {
	in := "3\n010\n101\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrRowTooShort)
}

func TestParse_Dimacs(t *testing.T) {
	in := "c a comment\np edge 4 3\ne 1 2\ne 2 3\ne 3 4\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
}

func TestParse_DimacsIgnoresVertexColoringLine(t *testing.T) {
	in := "p edge 2 1\nn 1 red\ne 1 2\n"
	g, err := format.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
}

func TestParse_DimacsRejectsEdgeBeforeHeader(t *testing.T) {
	in := "c a comment\ne 1 2\np edge 2 1\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrBadDimacs)
}

func TestParse_DimacsRejectsSelfLoop(t *testing.T) {
	in := "p edge 2 1\ne 1 1\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrSelfLoop)
}

func TestParse_DimacsRejectsMalformedHeader(t *testing.T) {
	in := "p edge notanumber 1\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrBadDimacs)
}

func TestParse_RejectsEmptyInput(t *testing.T) {
	_, err := format.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, format.ErrUnrecognizedFormat)
}

func TestParse_RejectsMalformedHeader(t *testing.T) {
	in := "not-a-number\n0 1\n"
	_, err := format.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, format.ErrMalformedHeader)
}

func TestParse_EdgeListEquivalentToRowMatrix(t *testing.T) {
	el, err := format.Parse(strings.NewReader("4\n0 1\n1 2\n2 3\n"))
	require.NoError(t, err)
	rm, err := format.Parse(strings.NewReader("4\n0100\n1010\n0101\n0010\n"))
	require.NoError(t, err)
	assert.Equal(t, el.EdgeList(), rm.EdgeList())
}
