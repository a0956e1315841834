// File: random.go
// Role: RandomSparse (Erdos-Renyi) and RandomRegular (stub matching).
// Adapted from teacher's builder/impl_random_sparse.go and
// impl_random_regular.go: same trial order, same bounded-retry
// stub-matching strategy, carried onto the int-indexed graph.Graph (no
// directed/loop/multigraph mode flags to branch on, since graph.Graph is
// unconditionally simple and undirected).
package graphs

import (
	"fmt"
	"math/rand"

	"github.com/haneytron/nautigo/graph"
)

const (
	minRandomSparseVertices  = 1
	minRandomRegularVertices = 1
	maxStubMatchingAttempts  = 3
)

// RandomSparse samples an Erdos-Renyi-like graph on n vertices, including
// each unordered pair {i,j}, i<j, independently with probability p. rng
// must be non-nil unless p is exactly 0 or 1, in which case the outcome
// is deterministic and no randomness is consulted.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1 || (rng != nil && rng.Float64() < p)
			if !include {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomRegular builds an undirected d-regular simple graph on n vertices
// via stub matching: n*d stubs (vertex i repeated d times) are shuffled
// and paired consecutively; a pairing with a self-loop or duplicate edge
// is rejected and reshuffled, up to a small bounded number of attempts.
func RandomRegular(n, d int, rng *rand.Rand) (*graph.Graph, error) {
	if n < minRandomRegularVertices {
		return nil, fmt.Errorf("RandomRegular: n=%d: %w", n, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("RandomRegular: d=%d out of [0,%d): %w", d, n, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("RandomRegular: n*d=%d is odd: %w", n*d, ErrConstructFailed)
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	g, err := graph.NewGraph(n)
	if err != nil {
		return nil, err
	}

	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			if err := g.AddEdge(stubs[i], stubs[i+1]); err != nil {
				return nil, err
			}
		}

		return g, nil
	}

	return nil, fmt.Errorf("RandomRegular: %d attempts: %w", maxStubMatchingAttempts, ErrConstructFailed)
}
