package taxtree

// PruneRank returns a new Tree containing exactly the nodes at the given
// concrete rank plus their ancestors. Nodes at the target rank become
// leaves (their subtrees are dropped); branches that never reach the
// target rank are removed entirely. The input tree is not modified —
// pruning copies every retained node.
//
// rank must be concrete: pruning to RankAuto or RankNone returns
// ErrBadRank (callers resolve RankAuto against their data first).
// Returns ErrRankNotFound when no node carries the target rank.
func PruneRank(t *Tree, rank Rank) (*Tree, error) {
	if t == nil || t.root == nil {
		return nil, ErrNilRoot
	}
	if !rank.Concrete() {
		return nil, ErrBadRank
	}

	root := prunedCopy(t.root, rank)
	if root == nil {
		return nil, ErrRankNotFound
	}

	return New(root)
}

// prunedCopy copies n when its subtree contains the target rank, nil
// otherwise. A node at the target rank is copied as a leaf.
func prunedCopy(n *Node, rank Rank) *Node {
	cp := &Node{ID: n.ID, Name: n.Name, Rank: n.Rank, Length: n.Length}
	if n.Rank == rank {
		return cp
	}
	for _, c := range n.children {
		if kept := prunedCopy(c, rank); kept != nil {
			cp.children = append(cp.children, kept)
		}
	}
	if len(cp.children) == 0 {
		return nil
	}

	return cp
}
