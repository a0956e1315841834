// File: leaf.go
// Role: the Leaf type — a discrete search-tree node captured as a candidate
// canonical relabeling.
package search

import "github.com/haneytron/nautigo/graph"

// Leaf is a discrete partition captured at the moment process_leaf visits
// it: the vertex sequence that reached it, the permutation it encodes
// (perm[i] is the offset of vertex i in the partition's element array), and
// the permuted-graph hash used to compare leaves.
type Leaf struct {
	VertexSequence []int
	Perm           []int
	Hash           graph.Hash
}

// Undiscovered reports whether this Leaf is the zero value — no leaf has
// been captured into it yet.
func (l Leaf) Undiscovered() bool {
	return l.Perm == nil
}

// discretePartitionToPerm converts a discrete partition to the permutation
// it encodes: perm[v] is the offset of v within the partition's element
// array (equivalently, v's rank in the discrete ordering).
func discretePartitionToPerm(elements []int) []int {
	perm := make([]int, len(elements))
	for offset, v := range elements {
		perm[v] = offset
	}

	return perm
}
