package ted

import (
	"github.com/ludo-technologies/treedist/internal/tree"
)

// PathType identifies the decomposition direction chosen for a
// subtree pair: the recurrence follows the path from the subtree root
// to its leftmost leaf, rightmost leaf, or heavy leaf.
type PathType uint8

const (
	PathHeavy PathType = iota
	PathLeft
	PathRight
)

// String returns the direction name.
func (p PathType) String() string {
	switch p {
	case PathHeavy:
		return "heavy"
	case PathLeft:
		return "left"
	case PathRight:
		return "right"
	default:
		return "unknown"
	}
}

// StrategyTable records the decomposition direction chosen for every
// pair of subtree roots (postorder ids of tree1 x tree2). Built once
// per tree pair, read-only during the distance computation.
type StrategyTable struct {
	n, m int
	dirs []PathType
}

// At returns the direction for the pair of subtree roots (v1, v2).
func (s *StrategyTable) At(v1, v2 int) PathType {
	return s.dirs[v1*s.m+v2]
}

// effectiveDir resolves the chosen direction to the recurrence that
// will actually run. A heavy path that ends at the leftmost
// (rightmost) leaf is the left (right) path; an interior heavy path
// runs the left recurrence, which is valid for any pair and leaves
// the distance unaffected.
func effectiveDir(ix *tree.Index, v int, d PathType) PathType {
	if d != PathHeavy {
		return d
	}
	switch ix.HeavyLeaf[v] {
	case ix.RLD[v]:
		return PathRight
	default:
		return PathLeft
	}
}

// hangingSubtrees returns the postorder ids of the subtree roots
// hanging off the path of direction d starting at v: for every node on
// the path, all its children except the one continuing the path.
func hangingSubtrees(ix *tree.Index, v int, d PathType) []int {
	d = effectiveDir(ix, v, d)
	var hanging []int
	u := v
	for ix.Heavy[u] != -1 {
		kids := ix.Children[u]
		next := kids[0]
		if d == PathRight {
			next = kids[len(kids)-1]
		}
		for _, c := range kids {
			if c != next {
				hanging = append(hanging, c)
			}
		}
		u = next
	}
	return hanging
}

// selectStrategy chooses, for every subtree pair, the decomposition
// direction minimizing the estimated total work: the O(|v1|*|v2|)
// single-path pass for the pair itself plus the recursively chosen
// cost of every subtree pair hanging off the path. Evaluated bottom-up
// in postorder of both trees, so smaller pairs are already decided.
// Ties are broken by the fixed order heavy, left, right. Since heavy
// resolves through effectiveDir before costing, its work always equals
// the left or right column; on pairs with an interior heavy path the
// choice is effectively two-way.
func selectStrategy(ix1, ix2 *tree.Index) *StrategyTable {
	n := len(ix1.Nodes)
	m := len(ix2.Nodes)
	s := &StrategyTable{n: n, m: m, dirs: make([]PathType, n*m)}
	work := make([]float64, n*m)

	for v1 := 0; v1 < n; v1++ {
		for v2 := 0; v2 < m; v2++ {
			pairWork := float64(ix1.Size[v1]) * float64(ix2.Size[v2])
			best := -1.0
			bestDir := PathHeavy
			for _, d := range [3]PathType{PathHeavy, PathLeft, PathRight} {
				w := pairWork
				for _, u := range hangingSubtrees(ix1, v1, d) {
					w += work[u*m+v2]
				}
				if best < 0 || w < best {
					best = w
					bestDir = d
				}
			}
			s.dirs[v1*m+v2] = bestDir
			work[v1*m+v2] = best
		}
	}
	return s
}
