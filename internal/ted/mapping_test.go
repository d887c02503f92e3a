package ted

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/treedist/internal/tree"
)

func computeMapping(t *testing.T, s1, s2 string) (Mapping, float64, *tree.Tree, *tree.Tree) {
	t.Helper()
	t1 := mustTree(t, s1)
	t2 := mustTree(t, s2)
	e := NewEngine(nil)
	d, err := e.ComputeDistance(t1, t2)
	require.NoError(t, err)
	m, err := e.ComputeEditMapping()
	require.NoError(t, err)
	return m, d, t1, t2
}

func isAncestor(a, b *tree.Node) bool {
	for p := b.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// assertValidMapping checks the structural invariants every edit
// mapping must satisfy: each node of both trees appears exactly once,
// and matched pairs preserve ancestor and left-to-right order.
func assertValidMapping(t *testing.T, m Mapping, t1, t2 *tree.Tree) {
	t.Helper()

	seen1 := map[*tree.Node]bool{}
	seen2 := map[*tree.Node]bool{}
	for _, p := range m {
		if p.Node1 != nil {
			assert.False(t, seen1[p.Node1], "node %q mapped twice", p.Node1.Label())
			seen1[p.Node1] = true
		}
		if p.Node2 != nil {
			assert.False(t, seen2[p.Node2], "node %q mapped twice", p.Node2.Label())
			seen2[p.Node2] = true
		}
		assert.False(t, p.Node1 == nil && p.Node2 == nil)
	}
	assert.Equal(t, t1.NodeCount(), len(seen1))
	assert.Equal(t, t2.NodeCount(), len(seen2))

	var matched []EditPair
	for _, p := range m {
		if p.Node1 != nil && p.Node2 != nil {
			matched = append(matched, p)
		}
	}
	for _, p := range matched {
		for _, q := range matched {
			if p == q {
				continue
			}
			assert.Equal(t, isAncestor(p.Node1, q.Node1), isAncestor(p.Node2, q.Node2),
				"ancestor order broken for (%s,%s) vs (%s,%s)",
				p.Node1.Label(), p.Node2.Label(), q.Node1.Label(), q.Node2.Label())
			if !isAncestor(p.Node1, q.Node1) && !isAncestor(q.Node1, p.Node1) {
				// Unrelated nodes keep their left-to-right order;
				// preorder ids reflect it for non-ancestor pairs.
				assert.Equal(t, p.Node1.ID() < q.Node1.ID(), p.Node2.ID() < q.Node2.ID(),
					"sibling order broken for (%s,%s) vs (%s,%s)",
					p.Node1.Label(), p.Node2.Label(), q.Node1.Label(), q.Node2.Label())
			}
		}
	}
}

func TestComputeEditMapping_IdenticalTrees(t *testing.T) {
	m, d, t1, t2 := computeMapping(t, "{f{d{a}{c{b}}}{e}}", "{f{d{a}{c{b}}}{e}}")
	assert.Equal(t, 0.0, d)
	assertValidMapping(t, m, t1, t2)

	// Every pair is an exact match.
	for _, p := range m {
		require.NotNil(t, p.Node1)
		require.NotNil(t, p.Node2)
		assert.Equal(t, p.Node1.Label(), p.Node2.Label())
	}
	assert.Len(t, m, t1.NodeCount())
}

func TestComputeEditMapping_CostEqualsDistance(t *testing.T) {
	for _, s1 := range distCorpus {
		for _, s2 := range distCorpus {
			m, d, t1, t2 := computeMapping(t, s1, s2)
			assertValidMapping(t, m, t1, t2)
			assert.InDelta(t, d, MappingCost(m, nil), costEps,
				"mapping cost disagrees with distance for %s vs %s", s1, s2)
		}
	}
}

func TestComputeEditMapping_SingleOperations(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		m, d, _, _ := computeMapping(t, "{a{b}{c}}", "{a{b}}")
		assert.Equal(t, 1.0, d)
		var deletes int
		for _, p := range m {
			if p.Node2 == nil {
				deletes++
				assert.Equal(t, "c", p.Node1.Label())
			}
		}
		assert.Equal(t, 1, deletes)
	})

	t.Run("insert", func(t *testing.T) {
		m, d, _, _ := computeMapping(t, "{a}", "{a{b}}")
		assert.Equal(t, 1.0, d)
		var inserts int
		for _, p := range m {
			if p.Node1 == nil {
				inserts++
				assert.Equal(t, "b", p.Node2.Label())
			}
		}
		assert.Equal(t, 1, inserts)
	})

	t.Run("rename", func(t *testing.T) {
		m, d, _, _ := computeMapping(t, "{a{b}{c}}", "{x{b}{c}}")
		assert.Equal(t, 1.0, d)
		var renames int
		for _, p := range m {
			if p.Node1 != nil && p.Node2 != nil && p.Node1.Label() != p.Node2.Label() {
				renames++
				assert.Equal(t, "a", p.Node1.Label())
				assert.Equal(t, "x", p.Node2.Label())
			}
		}
		assert.Equal(t, 1, renames)
	})
}

func TestComputeEditMapping_EmptySide(t *testing.T) {
	empty, err := tree.New(nil)
	require.NoError(t, err)
	t2 := mustTree(t, "{a{b}}")

	e := NewEngine(nil)
	_, err = e.ComputeDistance(empty, t2)
	require.NoError(t, err)
	m, err := e.ComputeEditMapping()
	require.NoError(t, err)

	require.Len(t, m, 2)
	for _, p := range m {
		assert.Nil(t, p.Node1)
		assert.NotNil(t, p.Node2)
	}
	assert.Equal(t, 2.0, MappingCost(m, nil))
}

func TestComputeEditMapping_PhaseGate(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.ComputeEditMapping()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPhase))
}

func TestComputeEditMapping_Deterministic(t *testing.T) {
	describe := func(m Mapping) []string {
		var out []string
		for _, p := range m {
			l1, l2 := "-", "-"
			if p.Node1 != nil {
				l1 = p.Node1.Label()
			}
			if p.Node2 != nil {
				l2 = p.Node2.Label()
			}
			out = append(out, l1+"/"+l2)
		}
		return out
	}

	for _, s1 := range distCorpus {
		for _, s2 := range distCorpus {
			m1, _, _, _ := computeMapping(t, s1, s2)
			m2, _, _, _ := computeMapping(t, s1, s2)
			assert.Equal(t, describe(m1), describe(m2))
		}
	}
}

func TestMappingCost_WeightedModel(t *testing.T) {
	cost := NewWeightedCostModel(0.5, 2, 3, nil)
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	c := tree.NewNode("c")
	d := tree.NewNode("d")

	m := Mapping{
		{Node1: a, Node2: a}, // match, 0
		{Node1: a, Node2: b}, // rename, 0.5
		{Node1: c},           // delete, 3
		{Node2: d},           // insert, 2
	}
	assert.InDelta(t, 5.5, MappingCost(m, cost), costEps)
}
