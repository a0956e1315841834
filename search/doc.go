// Package search implements the canonical-labeling search tree: an
// iterative individualization-refinement traversal over package partition,
// pruned by node invariants and by automorphisms discovered along the way.
//
// An Engine owns exactly one Graph, one Partition, and the bookkeeping the
// traversal needs (child sequence, per-level unexplored-children stacks,
// discovered generators, best/first leaf, per-level invariant ceiling). It
// is not safe for concurrent use, and never needs to be: two independent
// canonicalizations simply construct two Engines.
//
// The engine is side-effect-free — it never logs or prints. It accumulates
// a Statistics value and returns it; callers that want to report progress
// (package canon, cmd/nautigo) read it after Run returns.
package search
