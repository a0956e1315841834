// File: edgelist.go
// Role: edge-list parser (spec.md §6.1): header n, then "u v" lines.
package format

import (
	"strconv"
	"strings"

	"github.com/haneytron/nautigo/graph"
)

// parseEdgeList builds a Graph on n vertices from lines, each expected to
// be two whitespace-separated integers u v. Parallel edges collapse
// silently (AddEdge is already idempotent); u == v is rejected.
func parseEdgeList(n int, lines []string) (*graph.Graph, error) {
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedHeader
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, ErrMalformedHeader
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, ErrMalformedHeader
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}
