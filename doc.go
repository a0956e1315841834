// Package nautigo is a canonical graph labeling and isomorphism testing
// engine built around an ordered-partition refinement search with
// automorphism-based pruning.
//
// Subpackages:
//
//	graph/       — the Graph type, its two structural hashes, and QuickInvariant
//	perm/        — permutation algebra and the small group theory the search needs
//	partition/   — ordered partitions: refinement, individualization, invariants
//	search/      — the depth-first search engine itself
//	canon/       — the public facade: Canonicalize and IsIsomorphic
//	format/      — edge-list / row-matrix / DIMACS graph input parsing
//	graphs/      — fixture constructors (complete, path, cycle, random, ...)
//	cmd/nautigo/ — the command-line front end
//
// The typical entry point is canon.Canonicalize or canon.IsIsomorphic; the
// cmd/nautigo binary wraps both behind the flag surface spec.md §6
// describes.
package nautigo
