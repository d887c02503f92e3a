package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPaperTree constructs f(d(a, c(b)), e), the classic worked
// example for postorder-based edit distance algorithms.
func buildPaperTree(t *testing.T) *Tree {
	t.Helper()
	f := NewNode("f")
	d := NewNode("d")
	a := NewNode("a")
	c := NewNode("c")
	b := NewNode("b")
	e := NewNode("e")
	require.NoError(t, c.AddChild(b))
	require.NoError(t, d.AddChild(a))
	require.NoError(t, d.AddChild(c))
	require.NoError(t, f.AddChild(d))
	require.NoError(t, f.AddChild(e))
	tr, err := New(f)
	require.NoError(t, err)
	return tr
}

func TestBuildIndex_PostorderNumbering(t *testing.T) {
	tr := buildPaperTree(t)
	ix := BuildIndex(tr)

	labels := make([]string, len(ix.Nodes))
	for i, n := range ix.Nodes {
		labels[i] = n.Label()
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, labels)
	assert.Equal(t, 5, ix.Root())

	// Descendants occupy the contiguous range ending at the node.
	for id, n := range ix.Nodes {
		assert.Equal(t, id, ix.Post(n))
		lo := id - ix.Size[id] + 1
		assert.GreaterOrEqual(t, lo, 0)
		for _, c := range n.Children() {
			cid := ix.Post(c)
			assert.Less(t, cid, id)
			assert.GreaterOrEqual(t, cid, lo)
		}
	}
}

func TestBuildIndex_SizesAndDepths(t *testing.T) {
	tr := buildPaperTree(t)
	ix := BuildIndex(tr)

	assert.Equal(t, []int{1, 1, 2, 4, 1, 6}, ix.Size)
	assert.Equal(t, []int{2, 3, 2, 1, 1, 0}, ix.Depth)
	assert.Equal(t, []int{3, 2, 3, 5, 5, -1}, ix.Parent)
}

func TestBuildIndex_LeafDescendants(t *testing.T) {
	tr := buildPaperTree(t)
	ix := BuildIndex(tr)

	assert.Equal(t, []int{0, 1, 1, 0, 4, 0}, ix.LLD)
	// d's rightmost leaf is b: the rightmost path d-c-b ends at b,
	// c itself is interior.
	assert.Equal(t, []int{0, 1, 1, 1, 4, 4}, ix.RLD)

	// Both arrays are fixpoints on leaves and agree with a direct
	// walk down the outermost children.
	for id, n := range ix.Nodes {
		if n.IsLeaf() {
			assert.Equal(t, id, ix.LLD[id])
			assert.Equal(t, id, ix.RLD[id])
			continue
		}
		kids := n.Children()
		assert.Equal(t, ix.LLD[ix.Post(kids[0])], ix.LLD[id])
		assert.Equal(t, ix.RLD[ix.Post(kids[len(kids)-1])], ix.RLD[id])
	}
}

func TestBuildIndex_HeavyPath(t *testing.T) {
	tr := buildPaperTree(t)
	ix := BuildIndex(tr)

	// f's heavy child is d (size 4), d's is c (size 2), c's is b.
	assert.Equal(t, 3, ix.Heavy[5])
	assert.Equal(t, 2, ix.Heavy[3])
	assert.Equal(t, 1, ix.Heavy[2])
	assert.Equal(t, -1, ix.Heavy[0])

	// The heavy path from f ends at b, an interior leaf.
	assert.Equal(t, 1, ix.HeavyLeaf[5])
	assert.NotEqual(t, ix.LLD[5], ix.HeavyLeaf[5])
	assert.NotEqual(t, ix.RLD[5], ix.HeavyLeaf[5])
}

func TestBuildIndex_HeavyTieBreaksLeftmost(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	require.NoError(t, a.AddChild(b))
	require.NoError(t, a.AddChild(c))
	tr, err := New(a)
	require.NoError(t, err)

	ix := BuildIndex(tr)
	// b and c both have size 1; the leftmost child wins.
	assert.Equal(t, 0, ix.Heavy[2])
	assert.Equal(t, "b", ix.Nodes[ix.Heavy[2]].Label())
}

func TestBuildIndex_MirroredCoordinates(t *testing.T) {
	tr := buildPaperTree(t)
	ix := BuildIndex(tr)

	// Right-to-left postorder: e, b, c, a, d, f.
	mlabels := make([]string, len(ix.MNode))
	for m, id := range ix.MNode {
		mlabels[m] = ix.Nodes[id].Label()
		assert.Equal(t, m, ix.MPos[id])
	}
	assert.Equal(t, []string{"e", "b", "c", "a", "d", "f"}, mlabels)

	// In mirrored coordinates the rightmost leaf plays the leftmost
	// leaf's role: f's is e, d's is b.
	assert.Equal(t, ix.MPos[4], ix.MLLD[ix.MPos[5]])
	assert.Equal(t, ix.MPos[1], ix.MLLD[ix.MPos[3]])

	// Parents translate through the coordinate change.
	for id, p := range ix.Parent {
		if p == -1 {
			assert.Equal(t, -1, ix.MParent[ix.MPos[id]])
		} else {
			assert.Equal(t, ix.MPos[p], ix.MParent[ix.MPos[id]])
		}
	}
}

func TestBuildIndex_EmptyTree(t *testing.T) {
	tr, err := New(nil)
	require.NoError(t, err)
	ix := BuildIndex(tr)
	assert.Empty(t, ix.Nodes)
	assert.Equal(t, -1, ix.Root())
}

func TestBuildIndex_SingleNode(t *testing.T) {
	tr, err := New(NewNode("x"))
	require.NoError(t, err)
	ix := BuildIndex(tr)

	assert.Equal(t, []int{1}, ix.Size)
	assert.Equal(t, []int{0}, ix.LLD)
	assert.Equal(t, []int{0}, ix.RLD)
	assert.Equal(t, []int{-1}, ix.Parent)
	assert.Equal(t, []int{0}, ix.HeavyLeaf)
}
