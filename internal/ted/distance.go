package ted

import (
	"errors"
	"fmt"

	"github.com/ludo-technologies/treedist/internal/tree"
)

// ErrInvalidPhase is returned when an operation is requested out of
// order, e.g. a mapping before a distance has been computed.
var ErrInvalidPhase = errors.New("invalid computation phase")

// phase tracks the engine's progress through a single computation.
// Every phase requires the previous one; out-of-order requests fail
// fast instead of reading stale tables.
type phase int

const (
	phaseUninitialized phase = iota
	phaseIndexed
	phaseStrategySelected
	phaseDistanceComputed
	phaseMappingReady
)

// pathView adapts the single-path recurrence to a decomposition
// direction. The left view is plain postorder; the right view is the
// mirrored postorder, where the rightmost leaf descendant plays the
// leftmost one's role. pos/orig translate between postorder ids and
// view coordinates, lld/parent are in view coordinates.
type pathView struct {
	ix     *tree.Index
	lld    []int
	parent []int
	pos    []int
	orig   []int
}

func leftView(ix *tree.Index) pathView {
	return pathView{ix: ix, lld: ix.LLD, parent: ix.Parent, pos: ix.Ident, orig: ix.Ident}
}

func rightView(ix *tree.Index) pathView {
	return pathView{ix: ix, lld: ix.MLLD, parent: ix.MParent, pos: ix.MPos, orig: ix.MNode}
}

func (w pathView) node(x int) *tree.Node {
	return w.ix.Nodes[w.orig[x]]
}

// Engine computes the tree edit distance between two trees and, on
// demand afterwards, a minimum-cost edit mapping. An engine instance
// owns its tables exclusively; independent computations need separate
// instances and share nothing.
type Engine struct {
	cost  CostModel
	phase phase

	ix1, ix2 *tree.Index
	strat    *StrategyTable

	// delta holds the tree distance for every subtree pair, indexed
	// by postorder ids. Cells are written exactly once.
	delta *matrix

	distance float64
}

// NewEngine creates an engine with the given cost model. A nil model
// defaults to unit costs.
func NewEngine(cost CostModel) *Engine {
	if cost == nil {
		cost = NewUnitCostModel()
	}
	return &Engine{cost: cost}
}

// ComputeDistance runs the full pipeline for the tree pair: index both
// trees, select a decomposition strategy per subtree pair, then fill
// the distance tables bottom-up. It returns the tree edit distance and
// leaves the engine ready for ComputeEditMapping.
func (e *Engine) ComputeDistance(t1, t2 *tree.Tree) (float64, error) {
	if t1 == nil || t2 == nil {
		return 0, fmt.Errorf("both trees are required")
	}
	e.ix1 = tree.BuildIndex(t1)
	e.ix2 = tree.BuildIndex(t2)
	e.strat = nil
	e.delta = nil
	e.phase = phaseIndexed

	n := t1.NodeCount()
	m := t2.NodeCount()
	if n == 0 || m == 0 {
		// One side is empty: the edit script is pure inserts or
		// pure deletes, no recurrence needed.
		e.distance = 0
		for _, v := range e.ix2.Nodes {
			e.distance += e.cost.Insert(v)
		}
		for _, v := range e.ix1.Nodes {
			e.distance += e.cost.Delete(v)
		}
		e.phase = phaseDistanceComputed
		return e.distance, nil
	}

	e.strat = selectStrategy(e.ix1, e.ix2)
	e.phase = phaseStrategySelected

	e.delta = newMatrix(0, n-1, 0, m-1)
	e.gted(e.ix1.Root(), e.ix2.Root())
	e.distance = e.delta.at(e.ix1.Root(), e.ix2.Root())
	e.phase = phaseDistanceComputed
	return e.distance, nil
}

// Distance returns the result of the last computation.
func (e *Engine) Distance() (float64, error) {
	if e.phase < phaseDistanceComputed {
		return 0, fmt.Errorf("%w: distance has not been computed", ErrInvalidPhase)
	}
	return e.distance, nil
}

// gted decomposes the subtree pair along the direction the strategy
// table chose: subtrees hanging off the path are solved recursively,
// then the single-path pass fills the distances for every node on the
// path against every subtree of v2. After the call, delta is complete
// for all of subtree(v1) x subtree(v2).
func (e *Engine) gted(v1, v2 int) {
	d := effectiveDir(e.ix1, v1, e.strat.At(v1, v2))
	for _, u := range hangingSubtrees(e.ix1, v1, d) {
		e.gted(u, v2)
	}
	if d == PathRight {
		e.spf(v1, v2, rightView(e.ix1), rightView(e.ix2))
	} else {
		e.spf(v1, v2, leftView(e.ix1), leftView(e.ix2))
	}
}

// spf is the single-path forest distance pass for the pair (v1, v2):
// one forest recurrence per keyroot of subtree(v2), in ascending
// order, each anchored at v1's path. Every node of subtree(v2) lies on
// exactly one keyroot's path, so the pass completes delta for all
// pairs (x on v1's path, y in subtree(v2)).
func (e *Engine) spf(v1, v2 int, w1, w2 pathView) {
	i := w1.pos[v1]
	j := w2.pos[v2]
	loJ := w2.lld[j]
	for k := loJ; k <= j; k++ {
		if k == j || w2.lld[k] != w2.lld[w2.parent[k]] {
			e.forestDist(i, k, w1, w2)
		}
	}
}

// forestDist fills the forest distance table for the keyroot pair
// (i, j), both in view coordinates. Rows and columns -1 relative to
// the leftmost leaves stand for empty forests. Cells where both nodes
// sit on their keyroot's path are tree distances and are committed to
// delta; all other cells splice in the already known distance of the
// two subtrees.
func (e *Engine) forestDist(i, j int, w1, w2 pathView) {
	lo1 := w1.lld[i]
	lo2 := w2.lld[j]
	fd := newMatrix(lo1-1, i, lo2-1, j)

	fd.set(lo1-1, lo2-1, 0)
	for x := lo1; x <= i; x++ {
		fd.set(x, lo2-1, fd.at(x-1, lo2-1)+e.cost.Delete(w1.node(x)))
	}
	for y := lo2; y <= j; y++ {
		fd.set(lo1-1, y, fd.at(lo1-1, y-1)+e.cost.Insert(w2.node(y)))
	}

	for x := lo1; x <= i; x++ {
		for y := lo2; y <= j; y++ {
			del := fd.at(x-1, y) + e.cost.Delete(w1.node(x))
			ins := fd.at(x, y-1) + e.cost.Insert(w2.node(y))
			if w1.lld[x] == lo1 && w2.lld[y] == lo2 {
				ren := fd.at(x-1, y-1) + e.cost.Rename(w1.node(x), w2.node(y))
				v := min3(del, ins, ren)
				fd.set(x, y, v)
				e.delta.set(w1.orig[x], w2.orig[y], v)
			} else {
				sub := fd.at(w1.lld[x]-1, w2.lld[y]-1) + e.delta.at(w1.orig[x], w2.orig[y])
				fd.set(x, y, min3(del, ins, sub))
			}
		}
	}
}

// Similarity normalizes a distance into [0, 1]: 1 for identical trees,
// approaching 0 as the distance nears the larger tree size.
func Similarity(distance float64, size1, size2 int) float64 {
	max := size1
	if size2 > max {
		max = size2
	}
	if max == 0 {
		return 1.0
	}
	s := 1.0 - distance/float64(max)
	if s < 0 {
		return 0.0
	}
	return s
}
