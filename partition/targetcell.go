// File: targetcell.go
// Role: target-cell selection — choosing which non-singleton cell to
// individualize next.
package partition

import "github.com/haneytron/nautigo/graph"

// TargetCellMethod selects the policy used by SelectTargetCell.
type TargetCellMethod int

const (
	// First selects the leftmost non-singleton cell.
	First TargetCellMethod = iota
	// FirstSmallest selects the leftmost non-singleton cell of minimum length.
	FirstSmallest
	// Joins selects the non-singleton cell non-trivially joined to the most others.
	Joins
)

// SelectTargetCell returns the offset and length of a non-singleton cell
// chosen according to method. Returns ErrNoNonSingletonCell if the partition
// is discrete.
func (p *Partition) SelectTargetCell(method TargetCellMethod, g *graph.Graph) (first, length int, err error) {
	if len(p.nonSingleton) == 0 {
		return 0, 0, ErrNoNonSingletonCell
	}

	switch method {
	case First:
		idx := p.nonSingleton[0]

		return p.cells[idx].first, p.cells[idx].length, nil

	case FirstSmallest:
		best := p.nonSingleton[0]
		minLen := p.cells[best].length
		for _, idx := range p.nonSingleton {
			l := p.cells[idx].length
			if l == 2 {
				return p.cells[idx].first, l, nil
			}
			if l < minLen {
				minLen = l
				best = idx
			}
		}

		return p.cells[best].first, p.cells[best].length, nil

	case Joins:
		idx, err := p.mostNonTrivialJoins(g)
		if err != nil {
			return 0, 0, err
		}

		return p.cells[idx].first, p.cells[idx].length, nil

	default:
		return 0, 0, ErrUnrecognizedMethod
	}
}

// mostNonTrivialJoins returns the arena index of the first non-singleton
// cell non-trivially joined to the greatest number of other non-singleton
// cells: X is non-trivially joined to Y iff 0 < deg(x,Y) < |Y| for x in X
// (well-defined because the partition is assumed equitable, so any x in X
// gives the same answer).
func (p *Partition) mostNonTrivialJoins(g *graph.Graph) (int, error) {
	if len(p.nonSingleton) == 0 {
		return 0, ErrNoNonSingletonCell
	}

	counts := make([]int, len(p.nonSingleton))
	for i := 0; i < len(p.nonSingleton); i++ {
		ci := p.cells[p.nonSingleton[i]]
		representative := p.elements[ci.first]
		for j := i + 1; j < len(p.nonSingleton); j++ {
			cj := p.cells[p.nonSingleton[j]]
			cellJ := p.decodeAt(cj.first, cj.length)
			d := g.DegreeInto(representative, cellJ)
			if d > 0 && d < cj.length {
				counts[i]++
				counts[j]++
			}
		}
	}

	maxPos := 0
	for i, c := range counts {
		if c > counts[maxPos] {
			maxPos = i
		}
	}

	return p.nonSingleton[maxPos], nil
}
