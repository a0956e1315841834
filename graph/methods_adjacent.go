// File: methods_adjacent.go
// Role: QuickInvariant, a cheap permutation-invariant fingerprint used by
// package canon to reject non-isomorphic graphs before running a full
// canonicalization.
//
// QuickInvariant is deliberately NOT part of the canonical form: two
// isomorphic graphs always produce the same fingerprint, but two
// non-isomorphic graphs may collide (e.g. same degree sequence, different
// structure — see spec scenario 4, 2*K3 vs C6). A match means "maybe
// isomorphic, run the real check"; a mismatch means "definitely not".
package graph

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// QuickInvariant is a 64-bit fingerprint of (n, m, sorted degree sequence).
type QuickInvariant uint64

// QuickInvariant computes g's fingerprint.
//
// Complexity: O(n log n).
func (g *Graph) QuickInvariant() QuickInvariant {
	degrees := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		degrees[v] = len(g.adj[v])
	}
	sort.Ints(degrees)

	buf := make([]byte, 8*(2+len(degrees)))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(g.n))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(g.m))
	for i, d := range degrees {
		binary.LittleEndian.PutUint64(buf[16+8*i:24+8*i], uint64(d))
	}

	return QuickInvariant(xxhash.Sum64(buf))
}
