// File: api.go
// Role: thin, deterministic public facade — string rendering and the
// structural invariants every Graph must satisfy (spec.md §3: no
// self-loops, symmetric adjacency, sorted neighbor lists).
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the graph as an adjacency listing, one line per vertex,
// e.g. "0: 1 2" — used by CLI diagnostics and test failure messages.
func (g *Graph) String() string {
	var b strings.Builder
	for v := 0; v < g.n; v++ {
		fmt.Fprintf(&b, "%d:", v)
		for _, w := range g.adj[v] {
			fmt.Fprintf(&b, " %d", w)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Validate checks the structural invariants of spec.md §3: no self-loops,
// every neighbor list sorted with no duplicates, and the adjacency relation
// symmetric. It is not called on the hot path — it exists for tests and for
// format parsers to sanity-check graphs they just built.
func (g *Graph) Validate() error {
	for v := 0; v < g.n; v++ {
		prev := -1
		for _, w := range g.adj[v] {
			if w == v {
				return fmt.Errorf("graph: vertex %d has a self-loop", v)
			}
			if w <= prev {
				return fmt.Errorf("graph: neighbor list of vertex %d is not strictly sorted", v)
			}
			prev = w
			if !g.HasEdge(w, v) {
				return fmt.Errorf("graph: adjacency is not symmetric between %d and %d", v, w)
			}
		}
	}

	return nil
}

// EdgeList returns every edge {u,v} with u<v, sorted ascending by (u,v).
//
// Complexity: O(n + m).
func (g *Graph) EdgeList() [][2]int {
	out := make([][2]int, 0, g.m)
	for v := 0; v < g.n; v++ {
		for _, w := range g.adj[v] {
			if v < w {
				out = append(out, [2]int{v, w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}
