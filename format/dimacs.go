// File: dimacs.go
// Role: DIMACS parser (spec.md §6.3): "c" comments, a "p edge n e"
// header, "e u v" edges 1-indexed, "n" vertex-coloring lines ignored
// with a warning.
package format

import (
	"strconv"
	"strings"

	"github.com/haneytron/nautigo/graph"
	"github.com/haneytron/nautigo/internal/xlog"
)

// parseDimacs builds a Graph from DIMACS-format lines. The "p edge n e"
// header must appear before any "e" line; e's edge count is advisory and
// not enforced (the header ships with the rest of the file, which is
// authoritative).
func parseDimacs(lines []string) (*graph.Graph, error) {
	var g *graph.Graph

	for _, line := range lines {
		switch line[0] {
		case 'c':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, ErrBadDimacs
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, ErrBadDimacs
			}
			g, err = graph.NewGraph(n)
			if err != nil {
				return nil, err
			}
		case 'n':
			xlog.Default().Warn("dimacs: vertex coloring line ignored", "line", line)
		case 'e':
			if g == nil {
				return nil, ErrBadDimacs
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, ErrBadDimacs
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, ErrBadDimacs
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, ErrBadDimacs
			}
			u--
			v--
			if u == v {
				return nil, ErrSelfLoop
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		default:
			return nil, ErrBadDimacs
		}
	}

	if g == nil {
		return nil, ErrBadDimacs
	}

	return g, nil
}
