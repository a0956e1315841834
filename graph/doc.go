// Package graph defines the sparse adjacency representation consumed by the
// canonicalization search: a fixed-size, undirected, loopless, simple graph
// on vertices [0,n), plus the two hashes used to compare candidate canonical
// forms.
//
// A Graph is built once (NewGraph, then AddEdge) and is read-only for the
// remainder of a search: the search engine never mutates it, so a single
// Graph value may be shared across independent, concurrently running
// canonicalizations.
//
// AdjacencyHash encodes the graph as a bitvector so two graphs (or a graph
// under two different vertex orderings) can be compared lexicographically
// without ever materializing an adjacency matrix. PermHash computes the same
// encoding under a vertex relabeling without constructing the relabeled
// graph, which is what lets the search engine compare candidate leaves
// cheaply.
//
// QuickInvariant is not part of the canonical form: it is a cheap,
// permutation-invariant fingerprint (vertex count, edge count, sorted degree
// sequence) hashed with xxhash, used by callers to reject non-isomorphic
// pairs before paying for a full canonicalization.
package graph
