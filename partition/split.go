// File: split.go
// Role: individualization (split_and_refine), and checkpoint-and-restore
// (merge_cells / reconstruct_at_level) — the two halves of the engine's
// backtracking machinery.
package partition

import (
	"sort"

	"github.com/haneytron/nautigo/graph"
)

// SplitAndRefine individualizes v: its cell is split into the singleton {v}
// and a residual cell holding the rest, and the partition is then refined
// with the singleton as the sole splitter. v's cell must not already be a
// singleton.
func (p *Partition) SplitAndRefine(g *graph.Graph, v int) error {
	cellIdx := p.cellOf[v]
	c := p.cells[cellIdx]
	if c.length == 1 {
		return ErrSingletonCell
	}

	rest := make([]int, 0, c.length-1)
	for _, x := range p.elements[c.first : c.first+c.length] {
		if x != v {
			rest = append(rest, x)
		}
	}
	p.elements[c.first] = v
	copy(p.elements[c.first+1:c.first+c.length], rest)

	residualIdx := p.insertAfter(cellIdx, c.first+1, c.length-1, c.inLevel)
	for _, x := range rest {
		p.cellOf[x] = residualIdx
	}

	p.nsRemove(cellIdx) // c.length > 1 here, so cellIdx was necessarily in nonSingleton
	if len(rest) > 1 {
		p.nsInsert(residualIdx)
	}

	p.cells[cellIdx].length = 1
	p.cells[cellIdx].inLevel = p.level + 1

	p.refinementLog = append(p.refinementLog, []int{c.first})

	if p.useRefInvar {
		p.refInvar = p.refInvar[:0]
		p.refInvar = append(p.refInvar, len(rest)+1)
	}

	return p.Refine(g, []int{c.first})
}

// mergeCells merges the chain of cells from firstIdx to lastIdx (inclusive,
// following next pointers) back into a single cell occupying firstIdx,
// restoring sorted order within the merged range.
func (p *Partition) mergeCells(firstIdx, lastIdx int) {
	fc := p.cells[firstIdx]
	lc := p.cells[lastIdx]
	newLength := (lc.first - fc.first) + lc.length
	newInLevel := lc.inLevel

	for idx := firstIdx; ; idx = p.cells[idx].next {
		if p.cells[idx].length > 1 {
			p.nsRemove(idx)
		}
		if idx == lastIdx {
			break
		}
	}

	for idx := p.cells[firstIdx].next; idx != -1; {
		next := p.cells[idx].next
		isLast := idx == lastIdx
		p.unlink(idx)
		p.freeCell(idx)
		if isLast {
			break
		}
		idx = next
	}

	p.cells[firstIdx].length = newLength
	p.cells[firstIdx].inLevel = newInLevel

	merged := p.elements[fc.first : fc.first+newLength]
	sort.Ints(merged)
	for _, v := range merged {
		p.cellOf[v] = firstIdx
	}
	if newLength > 1 {
		p.nsInsert(firstIdx)
	}
}

// ReconstructAtLevel undoes every split recorded since level k, restoring
// the partition to the shape it had at level k. k must be at least 1 and at
// most the partition's current level.
func (p *Partition) ReconstructAtLevel(k int) error {
	if k < 1 || k > p.level {
		return ErrInvalidReturnLevel
	}

	stack := p.refinementLog[k-1]
	for i := len(stack) - 1; i >= 0; i-- {
		first := stack[i]
		elementAtFirst := p.elements[first]
		cellIdx := p.cellOf[elementAtFirst]
		if p.cells[cellIdx].inLevel > k {
			lastIdx := cellIdx
			for p.cells[lastIdx].inLevel > k {
				lastIdx = p.cells[lastIdx].next
			}
			p.mergeCells(cellIdx, lastIdx)
		}
	}

	p.level = k
	p.refinementLog = p.refinementLog[:k-1]
	if p.useRefInvar {
		p.refInvar = p.refInvar[:0]
	}

	return nil
}
