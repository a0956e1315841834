// File: process.go
// Role: the four node-visit operations the run loop dispatches to:
// processNode, pruneByInvariant, processLeaf, backtrackTo.
package search

import (
	"github.com/haneytron/nautigo/partition"
	"github.com/haneytron/nautigo/perm"
)

// processNode handles one visit to a non-discrete partition. On first
// visit it selects and records the target cell (and, when UseImplicit
// applies, collapses it to its first element per the implicit-automorphism
// shortcut); on later visits it prunes the recorded children against the
// MCR of automorphisms found since. It then branches on the first
// remaining child, or backtracks if none remain.
func (e *Engine) processNode() {
	if e.currentLevel == 1 && e.opt.ExploreFirstPath {
		if e.firstPathHelp {
			e.firstPathExplored = true
		} else {
			e.firstPathHelp = true
		}
	}

	idx := e.currentLevel - 1
	if len(e.unbranched) < e.currentLevel {
		method := e.opt.TargetCellMethod
		if e.opt.MaxLevelStrongTC > 0 && e.currentLevel < e.opt.MaxLevelStrongTC {
			method = e.opt.StrongTargetCellMethod
		}
		first, length, err := e.currentPartition.SelectTargetCell(method, e.graph)
		if err != nil {
			e.err = err

			return
		}
		e.stats.TotalTargetCells++

		elements := e.currentPartition.Elements()
		cell := append([]int(nil), elements[first:first+length]...)
		if e.opt.UseImplicit && e.isImplicitAutomorphism() && len(cell) > 0 {
			cell = cell[:1]
		}
		e.unbranched = append(e.unbranched, cell)
	} else if len(e.foundAutomorphisms) > 0 {
		mcr, err := e.foundAutomorphisms.MCR(e.currentVertexSeq)
		if err != nil {
			e.err = err

			return
		}
		current := e.unbranched[idx]
		pruned := intersectSorted(current, mcr)
		e.stats.NumPrunedByAuto += len(current) - len(pruned)
		e.unbranched[idx] = pruned
	}

	current := e.unbranched[idx]
	if len(current) == 0 {
		e.backtrackTo(e.currentLevel - 1)

		return
	}

	child := current[0]
	e.unbranched[idx] = current[1:]
	e.currentVertexSeq = append(e.currentVertexSeq, child)

	if err := e.currentPartition.SplitAndRefine(e.graph, child); err != nil {
		e.err = err

		return
	}
	e.stats.RefinementsMade++

	if e.currentPartition.IsDiscrete() {
		e.currentLevel++

		return
	}

	e.pruneByInvariant()
}

// isImplicitAutomorphism reports whether the current partition's shape
// guarantees every remaining sibling of the about-to-be-chosen target cell
// lies in the same orbit: n <= p+4, or n = p+m, or n = p+m+1, where p is
// the cell count and m the non-singleton cell count.
func (e *Engine) isImplicitAutomorphism() bool {
	n := e.graph.N()
	p := e.currentPartition.NumCells()
	m := e.currentPartition.NumNonSingletonCells()

	return n <= p+4 || n == p+m || n == p+m+1
}

// pruneByInvariant compares the child partition's node invariant against
// the recorded ceiling for this level, advancing, updating the ceiling, or
// pruning the branch by reconstructing the parent partition.
func (e *Engine) pruneByInvariant() {
	if e.opt.InvariantMethod == InvariantNone {
		e.currentLevel++

		return
	}

	newInvar := e.invariantOf()

	if len(e.maxInvarAtLevel) < e.currentLevel {
		if len(e.maxInvarAtLevel) != e.currentLevel-1 {
			e.err = ErrInvariantLevelMismatch

			return
		}
		e.maxInvarAtLevel = append(e.maxInvarAtLevel, newInvar)
		e.currentLevel++

		return
	}

	ceiling := e.maxInvarAtLevel[e.currentLevel-1]
	switch {
	case newInvar.Equal(ceiling):
		e.currentLevel++
	case ceiling.Less(newInvar):
		e.maxInvarAtLevel[e.currentLevel-1] = newInvar
		e.maxInvarAtLevel = e.maxInvarAtLevel[:e.currentLevel]
		e.bestLeafOutdatedDueToInvar = true
		e.currentLevel++
	case !e.opt.ExploreFirstPath || e.firstPathExplored:
		if err := e.currentPartition.ReconstructAtLevel(e.currentLevel); err != nil {
			e.err = err

			return
		}
		e.currentVertexSeq = e.currentVertexSeq[:len(e.currentVertexSeq)-1]
		e.stats.NumPrunedByInvar++
	default:
		e.currentLevel++
	}
}

func (e *Engine) invariantOf() partition.Invariant {
	switch e.opt.InvariantMethod {
	case InvariantShape:
		return e.currentPartition.ShapeInvariant()
	case InvariantRefinement:
		return e.currentPartition.RefInvariant()
	case InvariantNumCells:
		return e.currentPartition.NumCellsInvariant()
	default:
		return nil
	}
}

// processLeaf handles one visit to a discrete partition: it derives the
// permutation and permuted-graph hash the leaf encodes, and either records
// it as the new best guess, derives an automorphism from a hash collision,
// or discards it as worse than what's already been found.
func (e *Engine) processLeaf() {
	elements := e.currentPartition.Elements()
	leafPerm := discretePartitionToPerm(elements)
	hashVal := e.graph.PermHash(leafPerm)

	if e.firstLeaf.Undiscovered() {
		e.firstLeaf = Leaf{VertexSequence: append([]int(nil), e.currentVertexSeq...), Perm: leafPerm, Hash: hashVal}
		e.bestLeaf = e.firstLeaf
		e.backtrackTo(e.currentLevel - 1)

		return
	}

	if e.bestLeafOutdatedDueToInvar || e.bestLeaf.Hash.Less(hashVal) {
		e.bestLeaf = Leaf{VertexSequence: append([]int(nil), e.currentVertexSeq...), Perm: leafPerm, Hash: hashVal}
		e.stats.BestLeafUpdates++
		e.bestLeafOutdatedDueToInvar = false
		e.backtrackTo(e.currentLevel - 1)

		return
	}

	if hashVal.Equal(e.firstLeaf.Hash) {
		e.recordAutomorphism(e.firstLeaf, leafPerm)

		return
	}

	if hashVal.Equal(e.bestLeaf.Hash) {
		e.recordAutomorphism(e.bestLeaf, leafPerm)

		return
	}

	e.stats.NumBadLeaves++
	e.backtrackTo(e.currentLevel - 1)
}

// recordAutomorphism derives the automorphism g = against.Perm composed
// with the inverse of leafPerm, appends it to the discovered generators,
// and backtracks per opt.BacktrackMode.
func (e *Engine) recordAutomorphism(against Leaf, leafPerm []int) {
	inverse := perm.Permutation(leafPerm).Inverse()
	automorphism, err := perm.Permutation(against.Perm).Compose(inverse)
	if err != nil {
		e.err = err

		return
	}
	e.foundAutomorphisms = append(e.foundAutomorphisms, automorphism)
	e.stats.AutomorphismsFound++

	level := e.currentLevel - 1
	if e.opt.BacktrackMode == BacktrackToGCA {
		gca, err := getGCALevel(against.VertexSequence, e.currentVertexSeq)
		if err != nil {
			e.err = err

			return
		}
		level = gca
	}
	e.backtrackTo(level)
}

// getGCALevel returns the 1-indexed level up to which first and second
// agree: the greatest common ancestor of the two vertex sequences in the
// search tree. The sequences must differ somewhere within their shared
// length; two identical sequences have no ancestor to report.
func getGCALevel(first, second []int) (int, error) {
	max := len(first)
	if len(second) < max {
		max = len(second)
	}
	for i := 0; i < max; i++ {
		if first[i] != second[i] {
			return i + 1, nil
		}
	}

	return 0, ErrIdenticalLeaves
}

// backtrackTo restores the partition and bookkeeping to the state they had
// at the given level, or ends the run when level is 0.
func (e *Engine) backtrackTo(level int) {
	e.stats.TimesBacktracked++
	if level == 0 {
		e.currentLevel = 0

		return
	}

	if err := e.currentPartition.ReconstructAtLevel(level); err != nil {
		e.err = err

		return
	}
	if level-1 < len(e.currentVertexSeq) {
		e.currentVertexSeq = e.currentVertexSeq[:level-1]
	}
	if level < len(e.unbranched) {
		e.unbranched = e.unbranched[:level]
	}
	e.currentLevel = level
}

// intersectSorted returns the sorted intersection of a and b, both assumed
// sorted ascending with no duplicates.
func intersectSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}
