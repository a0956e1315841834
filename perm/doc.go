// Package perm implements permutations of [0,n) and the small amount of
// group theory the search engine needs to prune symmetric branches:
// composition, inversion, fixed-sequence subgroups, and minimum cell
// representatives (an overapproximation of vertex orbits under the
// automorphisms discovered so far).
//
// A Permutation is a plain value type with no internal locking, safe to
// share read-only across goroutines once constructed.
package perm
