package ted

import (
	"fmt"
	"math"

	"github.com/ludo-technologies/treedist/internal/tree"
)

// costEps absorbs association-order rounding when recomputed forest
// sums are compared against forward-pass values.
const costEps = 1e-9

// EditPair is one element of an edit mapping. Both nodes present is a
// match or rename, only Node1 a delete, only Node2 an insert.
type EditPair struct {
	Node1 *tree.Node
	Node2 *tree.Node
}

// Mapping is an ordered node correspondence realizing a minimum-cost
// edit script. A valid mapping covers every node of both trees exactly
// once and preserves ancestor and sibling order.
type Mapping []EditPair

// ComputeEditMapping backtracks through the retained distance tables
// and returns a minimum-cost edit mapping for the last computed pair.
// It is only valid after ComputeDistance has run on this engine.
// Tie-breaks follow the fixed preference match, delete, insert, so the
// result is deterministic and aligns as many nodes as possible.
func (e *Engine) ComputeEditMapping() (Mapping, error) {
	if e.phase < phaseDistanceComputed {
		return nil, fmt.Errorf("%w: mapping requested before distance", ErrInvalidPhase)
	}

	mapping := Mapping{}
	n := len(e.ix1.Nodes)
	m := len(e.ix2.Nodes)
	if n == 0 || m == 0 {
		for _, v := range e.ix1.Nodes {
			mapping = append(mapping, EditPair{Node1: v})
		}
		for _, v := range e.ix2.Nodes {
			mapping = append(mapping, EditPair{Node2: v})
		}
		e.phase = phaseMappingReady
		return mapping, nil
	}

	// Subtree pairs that still need alignment, starting at the roots.
	pending := [][2]int{{e.ix1.Root(), e.ix2.Root()}}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		mapping = e.backtrackPair(p[0], p[1], mapping, &pending)
	}
	e.phase = phaseMappingReady
	return mapping, nil
}

// backtrackPair re-derives the edit operations for the subtree pair
// (i, j): it recomputes the pair's forest distance table from the
// retained delta matrix, then walks it backwards from (i, j), choosing
// at each step an operation whose recorded sub-cost explains the cell.
// Off-path subtree matches are deferred onto the pending stack.
func (e *Engine) backtrackPair(i, j int, mapping Mapping, pending *[][2]int) Mapping {
	lo1 := e.ix1.LLD[i]
	lo2 := e.ix2.LLD[j]
	fd := e.rebuildForestDist(i, j)

	x, y := i, j
	for x >= lo1 || y >= lo2 {
		bothOnPath := x >= lo1 && y >= lo2 &&
			e.ix1.LLD[x] == lo1 && e.ix2.LLD[y] == lo2
		switch {
		case bothOnPath && approxEq(fd.at(x, y),
			fd.at(x-1, y-1)+e.cost.Rename(e.ix1.Nodes[x], e.ix2.Nodes[y])):
			mapping = append(mapping, EditPair{Node1: e.ix1.Nodes[x], Node2: e.ix2.Nodes[y]})
			x--
			y--
		case x >= lo1 && y >= lo2 && !bothOnPath && approxEq(fd.at(x, y),
			fd.at(e.ix1.LLD[x]-1, e.ix2.LLD[y]-1)+e.delta.at(x, y)):
			*pending = append(*pending, [2]int{x, y})
			x = e.ix1.LLD[x] - 1
			y = e.ix2.LLD[y] - 1
		case x >= lo1 && approxEq(fd.at(x, y),
			fd.at(x-1, y)+e.cost.Delete(e.ix1.Nodes[x])):
			mapping = append(mapping, EditPair{Node1: e.ix1.Nodes[x]})
			x--
		default:
			mapping = append(mapping, EditPair{Node2: e.ix2.Nodes[y]})
			y--
		}
	}
	return mapping
}

// rebuildForestDist recomputes the left-anchored forest distance table
// for the subtree pair (i, j) from the completed delta matrix. The
// recomputed cells agree with the forward pass, so backtracking can
// test which operation produced each value.
func (e *Engine) rebuildForestDist(i, j int) *matrix {
	lo1 := e.ix1.LLD[i]
	lo2 := e.ix2.LLD[j]
	fd := newMatrix(lo1-1, i, lo2-1, j)

	fd.set(lo1-1, lo2-1, 0)
	for x := lo1; x <= i; x++ {
		fd.set(x, lo2-1, fd.at(x-1, lo2-1)+e.cost.Delete(e.ix1.Nodes[x]))
	}
	for y := lo2; y <= j; y++ {
		fd.set(lo1-1, y, fd.at(lo1-1, y-1)+e.cost.Insert(e.ix2.Nodes[y]))
	}
	for x := lo1; x <= i; x++ {
		for y := lo2; y <= j; y++ {
			del := fd.at(x-1, y) + e.cost.Delete(e.ix1.Nodes[x])
			ins := fd.at(x, y-1) + e.cost.Insert(e.ix2.Nodes[y])
			if e.ix1.LLD[x] == lo1 && e.ix2.LLD[y] == lo2 {
				ren := fd.at(x-1, y-1) + e.cost.Rename(e.ix1.Nodes[x], e.ix2.Nodes[y])
				fd.set(x, y, min3(del, ins, ren))
			} else {
				sub := fd.at(e.ix1.LLD[x]-1, e.ix2.LLD[y]-1) + e.delta.at(x, y)
				fd.set(x, y, min3(del, ins, sub))
			}
		}
	}
	return fd
}

// MappingCost sums the cost model over a mapping. It is independent of
// any engine phase and usable as a cross-check: for a mapping produced
// by ComputeEditMapping it equals the computed distance.
func MappingCost(mapping Mapping, cost CostModel) float64 {
	if cost == nil {
		cost = NewUnitCostModel()
	}
	total := 0.0
	for _, p := range mapping {
		switch {
		case p.Node1 != nil && p.Node2 != nil:
			total += cost.Rename(p.Node1, p.Node2)
		case p.Node1 != nil:
			total += cost.Delete(p.Node1)
		case p.Node2 != nil:
			total += cost.Insert(p.Node2)
		}
	}
	return total
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= costEps
}
