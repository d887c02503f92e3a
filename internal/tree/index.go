package tree

// Index holds the derived structural indices of one tree as flat
// arrays keyed by postorder id, so distance tables can be dense arrays
// instead of per-node maps. Built once per tree by BuildIndex and
// read-only afterwards.
//
// Postorder ids are a contiguous permutation of [0, n): for every node
// v, its descendants occupy exactly [Post(v)-Size(v)+1, Post(v)].
type Index struct {
	Tree *Tree

	// Nodes maps postorder id to node.
	Nodes []*Node

	Size   []int // subtree size, 1 for leaves
	Depth  []int // root is 0
	Parent []int // postorder id of the parent, -1 for the root

	// LLD and RLD are the leftmost and rightmost leaf descendants,
	// as postorder ids. A leaf is its own leftmost and rightmost leaf.
	LLD []int
	RLD []int

	// Heavy is the child rooting the largest subtree (ties broken
	// leftmost), -1 for leaves. HeavyLeaf is the leaf ending the
	// heavy path that starts at the node.
	Heavy     []int
	HeavyLeaf []int

	// Children lists child postorder ids in sibling order.
	Children [][]int

	// Mirrored (right-to-left) postorder coordinates. In the mirrored
	// view the rightmost leaf plays the role the leftmost leaf plays
	// in plain postorder, which lets the right-path recurrence run the
	// same code as the left-path one.
	MPos    []int // postorder id -> mirrored id
	MNode   []int // mirrored id -> postorder id
	MLLD    []int // mirrored id -> mirrored id of its "leftmost" leaf
	MParent []int // mirrored id -> mirrored id of the parent, -1 for root

	// Ident is the identity permutation, the plain-postorder
	// counterpart of MPos/MNode.
	Ident []int
}

// Post returns the postorder id of a node owned by the indexed tree.
func (ix *Index) Post(n *Node) int {
	return n.post
}

// Root returns the postorder id of the root, n-1 for an n-node tree.
func (ix *Index) Root() int {
	return len(ix.Nodes) - 1
}

// BuildIndex computes all derived indices for the tree in O(n).
func BuildIndex(t *Tree) *Index {
	n := t.NodeCount()
	ix := &Index{
		Tree:      t,
		Nodes:     make([]*Node, n),
		Size:      make([]int, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		LLD:       make([]int, n),
		RLD:       make([]int, n),
		Heavy:     make([]int, n),
		HeavyLeaf: make([]int, n),
		Children:  make([][]int, n),
		MPos:      make([]int, n),
		MNode:     make([]int, n),
		MLLD:      make([]int, n),
		MParent:   make([]int, n),
		Ident:     make([]int, n),
	}
	if n == 0 {
		return ix
	}

	// First pass: postorder numbering, subtree sizes, depths and leaf
	// descendants, all in one traversal.
	next := 0
	var walk func(v *Node, depth int) int
	walk = func(v *Node, depth int) int {
		size := 1
		for _, c := range v.children {
			size += walk(c, depth+1)
		}
		id := next
		next++
		v.post = id
		ix.Nodes[id] = v
		ix.Size[id] = size
		ix.Depth[id] = depth
		if len(v.children) == 0 {
			ix.LLD[id] = id
			ix.RLD[id] = id
		} else {
			ix.LLD[id] = ix.LLD[v.children[0].post]
			ix.RLD[id] = ix.RLD[v.children[len(v.children)-1].post]
		}
		return size
	}
	walk(t.root, 0)

	// Second pass: parents, child lists and heavy children.
	for id := 0; id < n; id++ {
		v := ix.Nodes[id]
		if v.parent != nil {
			ix.Parent[id] = v.parent.post
		} else {
			ix.Parent[id] = -1
		}
		ix.Heavy[id] = -1
		if len(v.children) > 0 {
			kids := make([]int, len(v.children))
			best := -1
			for i, c := range v.children {
				kids[i] = c.post
				if best == -1 || ix.Size[c.post] > ix.Size[best] {
					best = c.post
				}
			}
			ix.Children[id] = kids
			ix.Heavy[id] = best
		}
		ix.Ident[id] = id
	}
	for id := 0; id < n; id++ {
		leaf := id
		for ix.Heavy[leaf] != -1 {
			leaf = ix.Heavy[leaf]
		}
		ix.HeavyLeaf[id] = leaf
	}

	// Mirrored postorder: traverse children right to left. Contiguity
	// of subtree ranges holds in the mirrored numbering as well.
	mnext := 0
	var mirror func(v *Node)
	mirror = func(v *Node) {
		for i := len(v.children) - 1; i >= 0; i-- {
			mirror(v.children[i])
		}
		ix.MPos[v.post] = mnext
		ix.MNode[mnext] = v.post
		mnext++
	}
	mirror(t.root)
	for id := 0; id < n; id++ {
		m := ix.MPos[id]
		ix.MLLD[m] = ix.MPos[ix.RLD[id]]
		if ix.Parent[id] == -1 {
			ix.MParent[m] = -1
		} else {
			ix.MParent[m] = ix.MPos[ix.Parent[id]]
		}
	}
	return ix
}
