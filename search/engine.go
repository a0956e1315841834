// File: engine.go
// Role: Engine construction and the top-level run loop.
package search

import (
	"errors"
	"time"

	"github.com/haneytron/nautigo/graph"
	"github.com/haneytron/nautigo/partition"
	"github.com/haneytron/nautigo/perm"
)

// Sentinel errors surfaced by a Run that detects an internal invariant
// violation rather than continuing on inconsistent state.
var (
	// ErrInvariantLevelMismatch indicates max_invar_at_level's length
	// diverged from current_level-1 at the point of extension.
	ErrInvariantLevelMismatch = errors.New("search: invariant-per-level bookkeeping is inconsistent")

	// ErrIdenticalLeaves indicates get_gca_level was asked to compare a
	// vertex sequence against itself.
	ErrIdenticalLeaves = errors.New("search: cannot find a common ancestor of identical leaves")
)

// Engine runs a single canonical-labeling search over one Graph. It owns
// its partition, child sequence, unexplored-children stacks, discovered
// automorphism generators, and captured leaves; it is not safe for
// concurrent use.
type Engine struct {
	graph *graph.Graph
	opt   Options
	stats Statistics

	currentPartition *partition.Partition
	currentLevel     int

	foundAutomorphisms perm.Group
	unbranched         [][]int
	currentVertexSeq   []int

	firstLeaf Leaf
	bestLeaf  Leaf

	maxInvarAtLevel            []partition.Invariant
	bestLeafOutdatedDueToInvar bool

	firstPathExplored bool
	firstPathHelp     bool

	err error
}

// NewEngine builds the root search node: the unit partition or the
// caller-supplied one, refined once, with ref_invar collection turned on
// when InvariantMethod is InvariantRefinement.
func NewEngine(g *graph.Graph, opt Options) (*Engine, error) {
	switch opt.InvariantMethod {
	case InvariantNone, InvariantShape, InvariantRefinement, InvariantNumCells:
	default:
		return nil, ErrUnrecognizedInvariantMethod
	}

	var p *partition.Partition
	var err error
	if opt.UseUnitPartition {
		p, err = partition.NewUnit(g.N())
	} else {
		p, err = partition.NewFromCells(opt.InputPartition)
	}
	if err != nil {
		return nil, err
	}

	e := &Engine{
		graph:            g,
		opt:              opt,
		currentPartition: p,
		currentLevel:     1,
	}
	e.stats.MaxLevel = 1

	if opt.InvariantMethod == InvariantRefinement {
		p.SetRefInvarEnabled(true)
	}
	if err := p.Refine(g, nil); err != nil {
		return nil, err
	}
	e.stats.RefinementsMade++

	return e, nil
}

// Run executes the traversal to completion and returns the best leaf found
// together with run statistics. An error is returned only when the engine
// detects an internal inconsistency (spec §7's "internal consistency"
// class); ordinary graphs always terminate normally.
func (e *Engine) Run() (Leaf, Statistics, error) {
	e.stats.StartTime = time.Now()

	for e.currentLevel >= 1 && e.err == nil {
		if e.currentLevel > e.stats.MaxLevel {
			e.stats.MaxLevel = e.currentLevel
		}
		if !e.currentPartition.IsDiscrete() {
			e.processNode()
		} else {
			e.stats.LeavesVisited++
			e.processLeaf()
		}
	}

	e.stats.ExecutionTime = time.Since(e.stats.StartTime)
	if e.err != nil {
		return Leaf{}, e.stats, e.err
	}

	return e.bestLeaf, e.stats, nil
}

// FoundAutomorphisms returns the generators discovered during Run, in
// discovery order.
func (e *Engine) FoundAutomorphisms() perm.Group {
	return append(perm.Group(nil), e.foundAutomorphisms...)
}
