// Package canon is the public facade over graph canonicalization and
// isomorphism testing: it wires graph, perm, partition, and search
// together behind two entrypoints, Canonicalize and IsIsomorphic.
//
// IsIsomorphic short-circuits on a cheap QuickInvariant mismatch before
// paying for a full search (spec.md §4.5): a fingerprint mismatch proves
// non-isomorphism outright, while a match falls through to comparing
// canonical-form hashes, the only sound test.
package canon
