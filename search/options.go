// File: options.go
// Role: search policy — which invariant prunes subtrees, which cell is
// individualized next, how far a pruned branch backtracks, and the small
// set of feature toggles the engine exposes.
package search

import (
	"errors"

	"github.com/haneytron/nautigo/partition"
)

// Sentinel errors returned by option validation.
var (
	// ErrUnrecognizedInvariantMethod indicates an Options.InvariantMethod
	// value outside the declared constants reached the engine.
	ErrUnrecognizedInvariantMethod = errors.New("search: unrecognized invariant method")
)

// InvariantMethod selects which node invariant prunes search subtrees.
type InvariantMethod int

const (
	// InvariantNone disables pruning by invariant entirely; every child is explored.
	InvariantNone InvariantMethod = iota
	// InvariantShape compares cell-length sequences (partition.ShapeInvariant).
	InvariantShape
	// InvariantRefinement compares splitter-class sizes collected during
	// refinement (partition.RefInvariant); the strongest and most expensive
	// of the three.
	InvariantRefinement
	// InvariantNumCells compares cell counts alone (partition.NumCellsInvariant).
	InvariantNumCells
)

// BacktrackMode selects how far process_leaf backtracks after disposing of
// a leaf, per spec §9's open question: the reference source contains both
// variants.
type BacktrackMode int

const (
	// BacktrackOneLevel always backtracks to current_level-1. This is the
	// more recent form in the reference source and the default here.
	BacktrackOneLevel BacktrackMode = iota
	// BacktrackToGCA backtracks to the greatest-common-ancestor level of the
	// disposed leaf and whichever leaf it was compared against (first_leaf
	// or best_leaf); stronger pruning, same correctness.
	BacktrackToGCA
)

// Options configures a single Engine run. The zero value is not meaningful;
// use DefaultOptions and override fields as needed.
type Options struct {
	// InvariantMethod selects the node invariant used for pruning.
	InvariantMethod InvariantMethod

	// TargetCellMethod selects the policy used at and above
	// MaxLevelStrongTC, or at every level when MaxLevelStrongTC is zero.
	TargetCellMethod partition.TargetCellMethod

	// StrongTargetCellMethod selects the policy used at levels strictly
	// below MaxLevelStrongTC, allowing a more expensive selector near the
	// root where it matters most.
	StrongTargetCellMethod partition.TargetCellMethod

	// MaxLevelStrongTC is the level (exclusive) below which
	// StrongTargetCellMethod applies instead of TargetCellMethod. Zero
	// disables the stronger selector entirely.
	MaxLevelStrongTC int

	// ExploreFirstPath disables invariant-based pruning along the very
	// first root-to-leaf path, guaranteeing a first_leaf is always found
	// before any pruning decision depends on one.
	ExploreFirstPath bool

	// UseImplicit enables the implicit-automorphism sibling-pruning
	// shortcut described in spec §4.4: when the current partition shape
	// guarantees every remaining sibling lies in the same orbit, only the
	// first child is explored.
	UseImplicit bool

	// UseUnitPartition selects the unit partition as the search root. When
	// false, InputPartition is used instead.
	UseUnitPartition bool

	// InputPartition supplies the initial cells when UseUnitPartition is
	// false; see partition.NewFromCells for its shape requirements.
	InputPartition [][]int

	// BacktrackMode selects the process_leaf backtrack variant.
	BacktrackMode BacktrackMode
}

// DefaultOptions returns the engine's defaults: shape invariant, first-cell
// target selection, no stronger near-root selector, unit partition,
// one-level backtrack, implicit pruning and explore-first-path both off.
func DefaultOptions() Options {
	return Options{
		InvariantMethod:        InvariantShape,
		TargetCellMethod:       partition.First,
		StrongTargetCellMethod: partition.First,
		MaxLevelStrongTC:       0,
		ExploreFirstPath:       false,
		UseImplicit:            false,
		UseUnitPartition:       true,
		BacktrackMode:          BacktrackOneLevel,
	}
}
