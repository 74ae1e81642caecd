package taxtree

// This file declares Node, Tree and the constructors/accessors around
// them. Nodes hold children only (no parent pointers): top-down links
// are all the pipeline traverses, and their absence is what lets
// WrapRoot graft a synthetic root without touching the wrapped subtree.

// DefaultBranchLength is the branch length assigned to every node built
// from lineage records. Taxonomy trees carry no measured evolutionary
// distances, so each parent-child edge counts as one unit.
const DefaultBranchLength = 1.0

// Node is a single taxon in a taxonomy tree.
type Node struct {
	// ID uniquely identifies the taxon within its Tree.
	ID string

	// Name is the taxon's display name. Informational only.
	Name string

	// Rank is the node's taxonomic level, RankNone for unranked nodes.
	Rank Rank

	// Length is the branch length from this node to its parent.
	// The root's Length is ignored by distance kernels.
	Length float64

	children []*Node
}

// NewNode returns a Node with DefaultBranchLength and no children.
func NewNode(id, name string, rank Rank) *Node {
	return &Node{ID: id, Name: name, Rank: rank, Length: DefaultBranchLength}
}

// AddChild appends c to n's children, keeping insertion order.
// Returns ErrNilNode if either node is nil.
func (n *Node) AddChild(c *Node) error {
	if n == nil || c == nil {
		return ErrNilNode
	}
	n.children = append(n.children, c)

	return nil
}

// Children returns n's children in insertion order. The returned slice
// is a fresh copy; the nodes themselves are shared.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Tree is a rooted taxonomy tree with an ID index over its nodes.
type Tree struct {
	root  *Node
	index map[string]*Node
}

// New builds a Tree around root, walking the whole structure to index
// nodes by ID. Returns ErrNilRoot for a nil root, ErrEmptyID for a node
// with an empty ID, and ErrDuplicateID when two nodes share an ID.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	index := make(map[string]*Node)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == "" {
			return nil, ErrEmptyID
		}
		if _, seen := index[n.ID]; seen {
			return nil, ErrDuplicateID
		}
		index[n.ID] = n
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return &Tree{root: root, index: index}, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.index) }

// Find returns the node with the given ID, and whether it exists.
func (t *Tree) Find(id string) (*Node, bool) {
	n, ok := t.index[id]

	return n, ok
}

// Walk visits every node in preorder (parent before children, children
// in insertion order). Traversal stops early if fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	var rec func(n *Node) bool
	rec = func(n *Node) bool {
		if !fn(n) {
			return false
		}
		for _, c := range n.children {
			if !rec(c) {
				return false
			}
		}

		return true
	}
	rec(t.root)
}

// Leaves returns the tree's leaves in preorder.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			out = append(out, n)
		}

		return true
	})

	return out
}

// Taxon is a flat lineage record consumed by Build: a taxon, its parent
// and its rank. The root record points at itself or has an empty
// ParentID.
type Taxon struct {
	ID       string
	ParentID string
	Name     string
	Rank     Rank
}

// Build assembles a Tree from parent-pointer records. Exactly one record
// must be the root (ParentID empty or equal to its own ID). Children are
// attached in the order records are given, so traversal order is
// reproducible from input order. Every node gets DefaultBranchLength,
// except the root whose length is zeroed (it has no parent edge).
//
// Errors: ErrEmptyID, ErrDuplicateID, ErrNoRoot, ErrMultipleRoots,
// ErrUnknownParent.
func Build(taxa []Taxon) (*Tree, error) {
	nodes := make(map[string]*Node, len(taxa))
	var rootID string
	for _, tx := range taxa {
		if tx.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := nodes[tx.ID]; dup {
			return nil, ErrDuplicateID
		}
		nodes[tx.ID] = NewNode(tx.ID, tx.Name, tx.Rank)
		if tx.ParentID == "" || tx.ParentID == tx.ID {
			if rootID != "" {
				return nil, ErrMultipleRoots
			}
			rootID = tx.ID
		}
	}
	if rootID == "" {
		return nil, ErrNoRoot
	}
	// The root has no parent edge. Zeroing its Length keeps it inert if
	// the tree is later grafted under a synthetic root.
	nodes[rootID].Length = 0

	// Attach children in input order.
	for _, tx := range taxa {
		if tx.ID == rootID {
			continue
		}
		parent, ok := nodes[tx.ParentID]
		if !ok {
			return nil, ErrUnknownParent
		}
		if err := parent.AddChild(nodes[tx.ID]); err != nil {
			return nil, err
		}
	}

	return New(nodes[rootID])
}
