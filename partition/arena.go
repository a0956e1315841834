// File: arena.go
// Role: linked-list maintenance over the cell arena, and the sorted
// nonSingleton index used by target-cell selection and refinement.
package partition

import "sort"

// insertBefore allocates a new cell node and links it immediately before
// beforeIdx in partition order, returning the new cell's arena index.
func (p *Partition) insertBefore(beforeIdx, first, length, inLevel int) int {
	idx := p.allocCell(first, length, inLevel)
	prevIdx := p.cells[beforeIdx].prev
	p.cells[idx].prev = prevIdx
	p.cells[idx].next = beforeIdx
	p.cells[beforeIdx].prev = idx
	if prevIdx == -1 {
		p.head = idx
	} else {
		p.cells[prevIdx].next = idx
	}

	return idx
}

// insertAfter allocates a new cell node and links it immediately after
// afterIdx in partition order, returning the new cell's arena index.
func (p *Partition) insertAfter(afterIdx, first, length, inLevel int) int {
	idx := p.allocCell(first, length, inLevel)
	nextIdx := p.cells[afterIdx].next
	p.cells[idx].prev = afterIdx
	p.cells[idx].next = nextIdx
	p.cells[afterIdx].next = idx
	if nextIdx != -1 {
		p.cells[nextIdx].prev = idx
	}

	return idx
}

// unlink removes idx from the cell order without freeing its arena slot;
// callers that are done with idx must also call freeCell.
func (p *Partition) unlink(idx int) {
	prevIdx, nextIdx := p.cells[idx].prev, p.cells[idx].next
	if prevIdx == -1 {
		p.head = nextIdx
	} else {
		p.cells[prevIdx].next = nextIdx
	}
	if nextIdx != -1 {
		p.cells[nextIdx].prev = prevIdx
	}
}

// nsInsert inserts idx into nonSingleton at the position keeping the slice
// sorted by cell.first.
func (p *Partition) nsInsert(idx int) {
	first := p.cells[idx].first
	i := sort.Search(len(p.nonSingleton), func(k int) bool {
		return p.cells[p.nonSingleton[k]].first >= first
	})
	p.nonSingleton = append(p.nonSingleton, 0)
	copy(p.nonSingleton[i+1:], p.nonSingleton[i:])
	p.nonSingleton[i] = idx
}

// nsRemove removes idx from nonSingleton. idx must currently be present.
func (p *Partition) nsRemove(idx int) {
	first := p.cells[idx].first
	i := sort.Search(len(p.nonSingleton), func(k int) bool {
		return p.cells[p.nonSingleton[k]].first >= first
	})
	p.nonSingleton = append(p.nonSingleton[:i], p.nonSingleton[i+1:]...)
}
