package tree

import (
	"fmt"
)

// Node is a single node of an ordered labeled tree. Children keep the
// order in which they were attached. The label is opaque to the engine
// and only ever interpreted by a cost model.
type Node struct {
	id       int
	label    string
	children []*Node
	parent   *Node
	owner    *Tree

	// post is the postorder index attached by BuildIndex.
	post int
}

// NewNode creates a detached node with the given label. The node id is
// assigned later, when the node becomes part of a Tree.
func NewNode(label string) *Node {
	return &Node{id: -1, label: label}
}

// ID returns the stable identifier assigned at tree build time, or -1
// for a node that is not yet owned by a tree.
func (n *Node) ID() int {
	return n.id
}

// Label returns the node label.
func (n *Node) Label() string {
	return n.label
}

// Children returns the ordered child list. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root. The reference is
// non-owning; ownership always runs parent to child.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// AddChild appends child to the ordered child list. A node can have at
// most one parent and must not already belong to a tree; attaching an
// ancestor of n would create a cycle and is rejected.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return fmt.Errorf("cannot attach nil child")
	}
	if child == n {
		return fmt.Errorf("cannot attach node to itself")
	}
	if child.parent != nil {
		return fmt.Errorf("node already has a parent")
	}
	if child.owner != nil {
		return fmt.Errorf("node already owned by a tree")
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return fmt.Errorf("attaching ancestor would create a cycle")
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// String returns a short description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node{ID: %d, Label: %s, Children: %d}", n.id, n.label, len(n.children))
}

// Tree is an ordered, rooted, labeled tree that exclusively owns its
// nodes. Structure and labels are immutable once the tree is built;
// only derived indices are attached afterwards.
type Tree struct {
	root *Node
	size int
}

// New builds a tree from the given root, claiming exclusive ownership
// of every reachable node and assigning stable preorder ids. A nil
// root yields an empty tree. Nodes already owned by another tree are
// rejected.
func New(root *Node) (*Tree, error) {
	t := &Tree{root: root}
	if root == nil {
		return t, nil
	}
	if root.parent != nil {
		return nil, fmt.Errorf("root node has a parent")
	}
	nextID := 0
	var claim func(n *Node) error
	claim = func(n *Node) error {
		if n.owner != nil {
			return fmt.Errorf("node %q already owned by another tree", n.label)
		}
		n.owner = t
		n.id = nextID
		nextID++
		for _, c := range n.children {
			if err := claim(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := claim(root); err != nil {
		return nil, err
	}
	t.size = nextID
	return t, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int {
	return t.size
}

// IsEmpty returns true for a tree with no nodes.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Walk visits every node in preorder, the order node ids were assigned.
func (t *Tree) Walk(visit func(*Node)) {
	var rec func(n *Node)
	rec = func(n *Node) {
		visit(n)
		for _, c := range n.children {
			rec(c)
		}
	}
	if t.root != nil {
		rec(t.root)
	}
}

// Postorder returns all nodes children-before-parent, left to right.
func (t *Tree) Postorder() []*Node {
	nodes := make([]*Node, 0, t.size)
	var rec func(n *Node)
	rec = func(n *Node) {
		for _, c := range n.children {
			rec(c)
		}
		nodes = append(nodes, n)
	}
	if t.root != nil {
		rec(t.root)
	}
	return nodes
}
