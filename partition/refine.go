// File: refine.go
// Role: equitable refinement — the worklist/degree-decomposition scheme that
// makes a partition equitable with respect to a graph (spec: for any two
// cells X, Y, every vertex in X has the same |N(v) ∩ Y|).
package partition

import (
	"sort"

	"github.com/haneytron/nautigo/graph"
)

// Refine repeatedly splits non-singleton cells by degree into the cells of
// worklist until no split cell remains divisible, or the partition becomes
// discrete. worklist is a list of cell offsets (as returned by FirstOf or a
// cell descriptor's first field); a nil or empty worklist refines against
// every current cell. level is advanced by exactly 1 regardless of whether
// any split occurred.
//
// Complexity: O(n log n) per splitter processed, in the typical case.
func (p *Partition) Refine(g *graph.Graph, worklistOffsets []int) error {
	level := p.level

	var queue []int
	if len(worklistOffsets) == 0 {
		for idx := p.head; idx != -1; idx = p.cells[idx].next {
			queue = append(queue, idx)
		}
	} else {
		for _, first := range worklistOffsets {
			queue = append(queue, p.cellOf[p.elements[first]])
		}
	}
	inQueue := make(map[int]bool, len(queue)*2)
	for _, idx := range queue {
		inQueue[idx] = true
	}

	for qi := 0; qi < len(queue) && !p.IsDiscrete(); qi++ {
		w0 := queue[qi]
		inQueue[w0] = false
		w0c := p.cells[w0]
		cellW := p.decodeAt(w0c.first, w0c.length)

		snapshot := append([]int(nil), p.nonSingleton...)
		for _, x := range snapshot {
			xc := p.cells[x]
			cellX := p.decodeAt(xc.first, xc.length)
			classes := degreeDecomposition(g, cellX, cellW)
			if len(classes) == 1 {
				continue
			}

			inSubsequence := inQueue[x]
			largest := 0
			if !inSubsequence {
				for i, class := range classes {
					if len(class) > len(classes[largest]) {
						largest = i
					}
				}
			}

			// Remove x before its pieces are indexed: the first piece shares
			// x's offset, so a later nsRemove could not tell the two apart.
			if xc.length > 1 {
				p.nsRemove(x)
			}

			first := xc.first
			for i, class := range classes {
				copy(p.elements[first:first+len(class)], class)
				inLevel := level + 1
				if i == len(classes)-1 {
					inLevel = xc.inLevel
				}
				newIdx := p.insertBefore(x, first, len(class), inLevel)
				for _, v := range class {
					p.cellOf[v] = newIdx
				}
				if len(class) > 1 {
					p.nsInsert(newIdx)
				}
				if inSubsequence || i != largest {
					queue = append(queue, newIdx)
					inQueue[newIdx] = true
				}
				if level > 0 && p.useRefInvar {
					p.refInvar = append(p.refInvar, len(class))
				}
				first += len(class)
			}

			if len(p.refinementLog) > 0 && xc.inLevel != level+1 {
				last := len(p.refinementLog) - 1
				p.refinementLog[last] = append(p.refinementLog[last], xc.first)
			}

			p.unlink(x)
			p.freeCell(x)
		}
	}

	p.level++

	return nil
}

// degreeDecomposition partitions cellV into classes keyed by degree into
// cellW, ordered ascending by degree.
func degreeDecomposition(g *graph.Graph, cellV, cellW []int) [][]int {
	buckets := make(map[int][]int, len(cellV))
	for _, v := range cellV {
		d := g.DegreeInto(v, cellW)
		buckets[d] = append(buckets[d], v)
	}
	degrees := make([]int, 0, len(buckets))
	for d := range buckets {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	classes := make([][]int, len(degrees))
	for i, d := range degrees {
		classes[i] = buckets[d]
	}

	return classes
}
