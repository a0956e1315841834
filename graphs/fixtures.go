// File: fixtures.go
// Role: fixed topologies — complete, path, cycle, star, wheel, Petersen.
// Adapted from teacher's builder/impl_cycle.go, impl_path.go, impl_star.go,
// impl_wheel.go, impl_complete.go, impl_platonic.go: same vertex-count
// minimums and stable edge-emission order, ported from builder's
// string-ID core.Graph onto this module's int-indexed graph.Graph (so
// there is no id scheme to thread through — vertex i is always just i).
package graphs

import (
	"fmt"

	"github.com/haneytron/nautigo/graph"
)

const (
	minCompleteVertices = 1
	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
)

// Complete builds the complete graph K_n (n >= 1): every pair of distinct
// vertices is joined.
func Complete(n int) (*graph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Path builds the simple path P_n (n >= 2): vertices 0..n-1 joined
// consecutively.
func Path(n int) (*graph.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the simple cycle C_n (n >= 3): vertex i joined to (i+1)%n.
func Cycle(n int) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds a star on n vertices (n >= 2): vertex 0 is the center,
// joined to every one of the n-1 leaves 1..n-1.
func Star(n int) (*graph.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, i); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Wheel builds the wheel W_n on n vertices (n >= 4): vertex 0 is the hub,
// joined to every rim vertex, and the rim 1..n-1 forms a cycle.
func Wheel(n int) (*graph.Graph, error) {
	if n < minWheelVertices {
		return nil, fmt.Errorf("Wheel: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	rim := n - 1
	for i := 0; i < rim; i++ {
		u, v := 1+i, 1+(i+1)%rim
		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
		if err := g.AddEdge(0, u); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Petersen builds the Petersen graph: outer 5-cycle 0..4, inner
// 5-vertex pentagram 5..9 (i joined to (i+2)%5, offset by 5), and
// matching spokes i—(i+5).
func Petersen() (*graph.Graph, error) {
	const n = 10
	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(i, (i+1)%5); err != nil {
			return nil, err
		}
		if err := g.AddEdge(5+i, 5+(i+2)%5); err != nil {
			return nil, err
		}
		if err := g.AddEdge(i, 5+i); err != nil {
			return nil, err
		}
	}

	return g, nil
}
