// File: group.go
// Role: the small amount of group theory the search engine needs from a set
// of discovered automorphisms: the subgroup fixing a given vertex sequence,
// and that subgroup's minimum cell representatives (MCR) — an
// overapproximation of vertex orbits used to prune symmetric sibling
// branches (spec.md §4.4).
//
// Group here is not a mathematical group in general (no closure check is
// performed); it is whatever set of automorphisms the engine has collected
// at a given point in the search.
package perm

// Group is a set of permutations of the same domain size, not necessarily
// closed under composition.
type Group []Permutation

// SubgroupFixing returns the subset of g whose every member fixes sequence
// pointwise.
//
// Complexity: O(len(g) * len(sequence)).
func (g Group) SubgroupFixing(sequence []int) Group {
	sub := make(Group, 0, len(g))
	for _, p := range g {
		if p.Fixes(sequence) {
			sub = append(sub, p)
		}
	}

	return sub
}

// MCR returns an approximate set of minimum cell representatives for the
// orbits of the subgroup of g fixing sequence: one representative per orbit,
// each the smallest-index element reachable from it by closing under every
// permutation in that subgroup.
//
// This is an overapproximation, not a true orbit computation: because g may
// not be closed under composition, two elements can end up in different
// result orbits despite being truly equivalent under the full automorphism
// group. That only costs pruning opportunities, never correctness — the
// search engine still explores every orbit, just possibly more than one
// representative from a few of them.
//
// Returns ErrEmptyGroup if g has no elements (the domain size is then
// unknown).
//
// Complexity: O(n * len(subgroup)) in the worst case.
func (g Group) MCR(sequence []int) ([]int, error) {
	if len(g) == 0 {
		return nil, ErrEmptyGroup
	}

	n := g[0].Len()
	subgroup := g.SubgroupFixing(sequence)
	visited := make([]bool, n)
	result := make([]int, 0, n)

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		result = append(result, i)
		for _, p := range subgroup {
			for temp := p[i]; temp != i; temp = p[temp] {
				visited[temp] = true
			}
		}
	}

	return result, nil
}
