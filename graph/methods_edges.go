// File: methods_edges.go
// Role: the two graph hashes used to compare candidate canonical forms.
//
// Both hashes use the same row-major, complement-index bit layout: for an
// n-vertex graph, edge (i,j) sets the bit at position n*(n-i)-j-1. The
// exact layout is arbitrary (n*i+j would serve equally well); what matters
// is only that AdjacencyHash and PermHash use the identical layout, since
// they are never compared against any other encoding.
package graph

// Hash is a fixed-length bitvector, one bit per (ordered) pair of vertices,
// compared lexicographically (big-endian over the bit index) by Less.
type Hash []bool

// Less reports whether h is lexicographically smaller than other. Both must
// have equal length (true whenever both came from graphs of the same order).
func (h Hash) Less(other Hash) bool {
	for i := range h {
		if h[i] != other[i] {
			return !h[i] && other[i]
		}
	}

	return false
}

// Equal reports whether h and other encode the same bitvector.
func (h Hash) Equal(other Hash) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}

	return true
}

// AdjacencyHash returns the bitvector encoding of g's adjacency relation
// under the identity labeling.
//
// Complexity: O(n + m).
func (g *Graph) AdjacencyHash() Hash {
	n := g.n
	result := make(Hash, n*n)
	for i := 0; i < n; i++ {
		for _, j := range g.adj[i] {
			result[n*(n-i)-j-1] = true
		}
	}

	return result
}

// PermHash returns the bitvector encoding of the graph obtained by relabeling
// every vertex i to perm[i], without ever materializing the relabeled graph:
// it iterates the edges of g and sets bit n*(n-perm[i])-perm[j]-1 for each.
//
// perm must be a permutation of [0,n); callers that only have a
// perm.Permutation pass its underlying []int.
//
// Complexity: O(n + m).
func (g *Graph) PermHash(perm []int) Hash {
	n := g.n
	result := make(Hash, n*n)
	for i := 0; i < n; i++ {
		for _, j := range g.adj[i] {
			result[n*(n-perm[i])-perm[j]-1] = true
		}
	}

	return result
}
