// File: methods_clone.go
// Role: deep-copying and relabeling a Graph.
package graph

// Clone returns a deep copy of g, sharing no backing storage with it.
//
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	c := &Graph{n: g.n, m: g.m, adj: make([][]int, g.n)}
	for v := 0; v < g.n; v++ {
		c.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return c
}

// Relabel materializes the graph obtained by applying perm (vertex i moves
// to perm[i]): the identity underlying spec.md §4.1's PermHash, made
// concrete. Used by the CLI's -r/--random mode, which relabels each parsed
// input graph before comparing, and by property tests that assert canonical
// idempotence under relabeling (spec.md §8 property 5).
//
// Complexity: O(n + m).
func (g *Graph) Relabel(perm []int) *Graph {
	c := &Graph{n: g.n, adj: make([][]int, g.n)}
	for v := 0; v < g.n; v++ {
		for _, w := range g.adj[v] {
			if v < w {
				_ = c.AddEdge(perm[v], perm[w])
			}
		}
	}

	return c
}
