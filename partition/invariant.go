// File: invariant.go
// Role: node invariants — totally ordered values derived from a partition,
// compared lexicographically to prune search subtrees.
package partition

import "math"

// Invariant is a node invariant: a sequence of non-negative integers,
// compared lexicographically by Less. A shorter sequence that agrees with a
// longer one on every shared position is considered smaller (it is a
// prefix), giving a well-defined total order across invariants of differing
// length.
type Invariant []int

// Less reports whether inv is lexicographically smaller than other.
func (inv Invariant) Less(other Invariant) bool {
	n := len(inv)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if inv[i] != other[i] {
			return inv[i] < other[i]
		}
	}

	return len(inv) < len(other)
}

// Equal reports whether inv and other are the same sequence.
func (inv Invariant) Equal(other Invariant) bool {
	if len(inv) != len(other) {
		return false
	}
	for i := range inv {
		if inv[i] != other[i] {
			return false
		}
	}

	return true
}

// LeafInvariant is the sentinel invariant assigned to discrete (leaf)
// partitions: strictly greater than any invariant a non-leaf partition can
// produce, so a leaf is never pruned as "worse" than an interior node at the
// same level.
var LeafInvariant = Invariant{math.MaxInt}

// ShapeInvariant returns the sequence of cell lengths, in partition order.
func (p *Partition) ShapeInvariant() Invariant {
	if p.IsDiscrete() {
		return LeafInvariant
	}
	out := make(Invariant, 0, p.NumCells())
	for idx := p.head; idx != -1; idx = p.cells[idx].next {
		out = append(out, p.cells[idx].length)
	}

	return out
}

// NumCellsInvariant returns a one-element invariant holding the cell count.
func (p *Partition) NumCellsInvariant() Invariant {
	if p.IsDiscrete() {
		return LeafInvariant
	}

	return Invariant{p.NumCells()}
}

// RefInvariant returns the sizes of splitter classes emitted during the
// refinement that produced the current partition, in processing order; it
// is only meaningful when SetRefInvarEnabled(true) was called before that
// refinement ran.
func (p *Partition) RefInvariant() Invariant {
	if p.IsDiscrete() {
		return LeafInvariant
	}

	return append(Invariant(nil), p.refInvar...)
}

// SetRefInvarEnabled turns ref_invar collection on or off; disabling it
// clears any previously collected data.
func (p *Partition) SetRefInvarEnabled(enabled bool) {
	p.useRefInvar = enabled
	if !enabled {
		p.refInvar = nil
	}
}
