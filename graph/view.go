// File: view.go
// Role: read-only structural views derived from the adjacency relation,
// used by tests.
package graph

// DegreeSequence returns the degree of every vertex, in vertex order (not
// sorted) — callers that want the sorted form (as used by QuickInvariant)
// sort it themselves.
func (g *Graph) DegreeSequence() []int {
	out := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		out[v] = len(g.adj[v])
	}

	return out
}

// IsRegular reports whether every vertex has the same degree, and if so,
// that degree.
func (g *Graph) IsRegular() (degree int, ok bool) {
	if g.n == 0 {
		return 0, true
	}
	degree = len(g.adj[0])
	for v := 1; v < g.n; v++ {
		if len(g.adj[v]) != degree {
			return 0, false
		}
	}

	return degree, true
}

// IsComplete reports whether g is Kn: every pair of distinct vertices adjacent.
func (g *Graph) IsComplete() bool {
	for v := 0; v < g.n; v++ {
		if len(g.adj[v]) != g.n-1 {
			return false
		}
	}

	return true
}

// IsEmpty reports whether g has no edges.
func (g *Graph) IsEmpty() bool {
	return g.m == 0
}
