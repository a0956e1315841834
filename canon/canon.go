// File: canon.go
// Role: the two public entrypoints — Canonicalize and IsIsomorphic.
package canon

import (
	"github.com/haneytron/nautigo/graph"
	"github.com/haneytron/nautigo/internal/xlog"
	"github.com/haneytron/nautigo/search"
)

// Canonicalize runs the search engine to completion and returns the best
// leaf found (its permutation and permuted-graph hash give the canonical
// relabeling) along with run statistics.
func Canonicalize(g *graph.Graph, opt Options) (search.Leaf, search.Statistics, error) {
	if err := opt.Validate(); err != nil {
		return search.Leaf{}, search.Statistics{}, err
	}

	e, err := search.NewEngine(g, opt.Options)
	if err != nil {
		return search.Leaf{}, search.Statistics{}, err
	}

	leaf, stats, err := e.Run()
	if err != nil {
		return leaf, stats, err
	}

	if opt.PrintStats {
		xlog.Default().Info(stats.String())
	}
	if opt.PrintTime {
		xlog.Default().Infof("execution took: %s", stats.FormatDuration())
	}

	return leaf, stats, nil
}

// IsIsomorphic reports whether g1 and g2 are isomorphic under opt: first a
// cheap QuickInvariant comparison rejects obvious mismatches, then the
// canonical-form hashes of both graphs are compared.
func IsIsomorphic(g1, g2 *graph.Graph, opt Options) (bool, error) {
	if g1.QuickInvariant() != g2.QuickInvariant() {
		xlog.Default().Debug("quick-reject: degree-sequence fingerprints differ")

		return false, nil
	}

	leaf1, _, err := Canonicalize(g1, opt)
	if err != nil {
		return false, err
	}
	leaf2, _, err := Canonicalize(g2, opt)
	if err != nil {
		return false, err
	}

	return leaf1.Hash.Equal(leaf2.Hash), nil
}
