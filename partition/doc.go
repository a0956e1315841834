// Package partition implements the ordered-partition data structure at the
// heart of the canonicalization search: equitable refinement with respect to
// a graph, individualization-and-refinement by a chosen vertex, target-cell
// selection, and checkpoint-and-restore by search-tree level.
//
// Internally, cells live in an arena addressed by stable integer indices
// (prev/next links plus a free list) rather than a pointer-based doubly
// linked list: cell identity survives reslicing of the arena backing array,
// and cell_of becomes a plain []int lookup instead of an iterator. This is
// the reimplementation choice the reference design calls out explicitly as
// avoiding iterator invalidation while staying cache-friendly.
package partition
