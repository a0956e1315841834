// Package graph defines the central Graph type consumed by the
// canonicalization search.
//
// This file declares Graph, the sentinel errors for construction and
// mutation, and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 1.
//	ErrVertexOutOfRange    - an endpoint is outside [0,n).
//	ErrLoopNotAllowed      - AddEdge(v,v): self-loops are never permitted.
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with a non-positive vertex count.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint lies outside [0,n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrLoopNotAllowed indicates AddEdge was called with equal endpoints.
	ErrLoopNotAllowed = errors.New("graph: self-loops are not allowed")
)

// Graph is a fixed-size, undirected, simple graph on vertices [0,n).
//
// adj[v] holds v's neighbors as a sorted slice with no duplicates; edges are
// stored at both endpoints. Graph is built once via NewGraph/AddEdge and is
// read-only for the remainder of any search that uses it — the search
// engine never mutates it, so a single Graph may be shared freely across
// independent, concurrently running canonicalizations (see package search).
type Graph struct {
	n   int
	adj [][]int // adj[v] sorted ascending, no duplicates, v not in adj[v]
	m   int     // number of edges (undirected, counted once)
}

// NewGraph constructs an edgeless graph on n vertices. n must be at least 1.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrNegativeVertexCount
	}

	return &Graph{n: n, adj: make([][]int, n)}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges.
func (g *Graph) M() int { return g.m }
