package taxtree

// SyntheticRootID identifies the unranked root node grafted by WrapRoot.
// It must not collide with any real taxon ID in the wrapped tree.
const SyntheticRootID = "fake root"

// WrapRoot returns a new Tree whose root is a synthetic unranked node
// with exactly one child: t's root, shared by reference. Taxonomy roots
// commonly have several children (one per kingdom), while phylogenetic
// distance kernels demand a rooted tree whose root has at most two;
// wrapping satisfies that precondition without altering any distance,
// since the synthetic branch has zero length.
//
// Wrap, don't mutate: t and every node in it are left untouched, so the
// caller may keep using the original tree.
func WrapRoot(t *Tree) (*Tree, error) {
	if t == nil || t.root == nil {
		return nil, ErrNilRoot
	}
	if _, taken := t.index[SyntheticRootID]; taken {
		return nil, ErrDuplicateID
	}

	root := &Node{
		ID:       SyntheticRootID,
		Name:     SyntheticRootID,
		Rank:     RankNone,
		Length:   0,
		children: []*Node{t.root},
	}

	index := make(map[string]*Node, len(t.index)+1)
	for id, n := range t.index {
		index[id] = n
	}
	index[SyntheticRootID] = root

	return &Tree{root: root, index: index}, nil
}
