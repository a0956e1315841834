// File: matrix.go
// Role: row-matrix parser (spec.md §6.2): header n, then n rows of
// '0'/'1' characters (see DESIGN.md).
package format

import (
	"github.com/haneytron/nautigo/graph"
)

// parseRowMatrix builds a Graph on n vertices from rows, reading the first
// n characters of each of its first n entries; each of those characters
// must be '0' or '1', and a row shorter than n is rejected (characters
// past the n-th, and rows past the n-th, are not read). row[i][i]=='1'
// is a loop and rejected; the matrix is symmetrized on read, so row[i][j]
// and row[j][i] disagreeing is tolerated (an edge is added if either
// says so).
func parseRowMatrix(n int, rows []string) (*graph.Graph, error) {
	if len(rows) < n {
		return nil, ErrRowTooShort
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		row := rows[i]
		if len(row) < n {
			return nil, ErrRowTooShort
		}
		for j := 0; j < n; j++ {
			c := row[j]
			if c != '0' && c != '1' {
				return nil, ErrMalformedHeader
			}
			if c != '1' {
				continue
			}
			if i == j {
				return nil, ErrSelfLoop
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
