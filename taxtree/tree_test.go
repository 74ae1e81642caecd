package taxtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecodiv/taxtree"
)

// lineage returns a small two-kingdom taxonomy:
//
//	root
//	├── k1 (kingdom)
//	│   ├── p1 (phylum)
//	│   │   ├── s1 (species)
//	│   │   └── s2 (species)
//	│   └── p2 (phylum)
//	│       └── s3 (species)
//	└── k2 (kingdom)
//	    └── p3 (phylum)
//	        └── s4 (species)
func lineage() []taxtree.Taxon {
	return []taxtree.Taxon{
		{ID: "root", ParentID: "root", Name: "root", Rank: taxtree.RankNone},
		{ID: "k1", ParentID: "root", Name: "Bacteria", Rank: taxtree.RankKingdom},
		{ID: "k2", ParentID: "root", Name: "Archaea", Rank: taxtree.RankKingdom},
		{ID: "p1", ParentID: "k1", Name: "Firmicutes", Rank: taxtree.RankPhylum},
		{ID: "p2", ParentID: "k1", Name: "Bacteroidetes", Rank: taxtree.RankPhylum},
		{ID: "p3", ParentID: "k2", Name: "Euryarchaeota", Rank: taxtree.RankPhylum},
		{ID: "s1", ParentID: "p1", Name: "L. acidophilus", Rank: taxtree.RankSpecies},
		{ID: "s2", ParentID: "p1", Name: "S. aureus", Rank: taxtree.RankSpecies},
		{ID: "s3", ParentID: "p2", Name: "B. fragilis", Rank: taxtree.RankSpecies},
		{ID: "s4", ParentID: "p3", Name: "M. smithii", Rank: taxtree.RankSpecies},
	}
}

// TestBuild_Basic verifies node count, root identity and child order.
func TestBuild_Basic(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err, "well-formed lineage must build")

	assert.Equal(t, 10, tree.Len(), "every record becomes one node")
	assert.Equal(t, "root", tree.Root().ID, "self-referential record is the root")
	assert.Zero(t, tree.Root().Length, "root has no parent edge")

	k1, ok := tree.Find("k1")
	require.True(t, ok)
	assert.Equal(t, taxtree.DefaultBranchLength, k1.Length, "non-root branches get unit length")

	kids := tree.Root().Children()
	require.Len(t, kids, 2, "root has two kingdoms")
	assert.Equal(t, "k1", kids[0].ID, "children keep insertion order")
	assert.Equal(t, "k2", kids[1].ID, "children keep insertion order")
}

// TestBuild_Errors exercises every Build sentinel.
func TestBuild_Errors(t *testing.T) {
	_, err := taxtree.Build([]taxtree.Taxon{{ID: "", ParentID: ""}})
	assert.ErrorIs(t, err, taxtree.ErrEmptyID, "empty taxon ID must error")

	_, err = taxtree.Build([]taxtree.Taxon{
		{ID: "a", ParentID: "a"},
		{ID: "a", ParentID: "a"},
	})
	assert.ErrorIs(t, err, taxtree.ErrDuplicateID, "duplicate IDs must error")

	_, err = taxtree.Build([]taxtree.Taxon{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
	})
	assert.ErrorIs(t, err, taxtree.ErrNoRoot, "no self-referential record must error")

	_, err = taxtree.Build([]taxtree.Taxon{
		{ID: "a", ParentID: "a"},
		{ID: "b", ParentID: "b"},
	})
	assert.ErrorIs(t, err, taxtree.ErrMultipleRoots, "two roots must error")

	_, err = taxtree.Build([]taxtree.Taxon{
		{ID: "a", ParentID: "a"},
		{ID: "b", ParentID: "missing"},
	})
	assert.ErrorIs(t, err, taxtree.ErrUnknownParent, "dangling parent must error")
}

// TestTree_FindAndLeaves verifies the ID index and preorder leaf listing.
func TestTree_FindAndLeaves(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)

	n, ok := tree.Find("p2")
	require.True(t, ok, "indexed node must be found")
	assert.Equal(t, taxtree.RankPhylum, n.Rank)

	_, ok = tree.Find("nope")
	assert.False(t, ok, "unknown ID must not be found")

	var ids []string
	for _, leaf := range tree.Leaves() {
		ids = append(ids, leaf.ID)
	}
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids, "leaves in preorder")
}

// TestPruneRank_SpeciesLeavesOnly verifies pruning keeps ancestors and
// turns target-rank nodes into leaves.
func TestPruneRank_SpeciesLeavesOnly(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)

	pruned, err := taxtree.PruneRank(tree, taxtree.RankPhylum)
	require.NoError(t, err)

	var leafIDs []string
	for _, leaf := range pruned.Leaves() {
		leafIDs = append(leafIDs, leaf.ID)
		assert.Equal(t, taxtree.RankPhylum, leaf.Rank, "every pruned leaf sits at the target rank")
	}
	assert.Equal(t, []string{"p1", "p2", "p3"}, leafIDs)

	// Species below the phyla are gone.
	_, ok := pruned.Find("s1")
	assert.False(t, ok, "nodes below the target rank are dropped")
}

// TestPruneRank_DoesNotMutateInput verifies pruning is a copy.
func TestPruneRank_DoesNotMutateInput(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)

	before := tree.Len()
	_, err = taxtree.PruneRank(tree, taxtree.RankKingdom)
	require.NoError(t, err)

	assert.Equal(t, before, tree.Len(), "input tree keeps all its nodes")
	_, ok := tree.Find("s4")
	assert.True(t, ok, "input tree still holds its species")
}

// TestPruneRank_Errors exercises the PruneRank sentinels.
func TestPruneRank_Errors(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)

	_, err = taxtree.PruneRank(tree, taxtree.RankAuto)
	assert.ErrorIs(t, err, taxtree.ErrBadRank, "auto is not a prunable rank")

	_, err = taxtree.PruneRank(tree, taxtree.RankGenus)
	assert.ErrorIs(t, err, taxtree.ErrRankNotFound, "no genus nodes in the fixture")

	_, err = taxtree.PruneRank(nil, taxtree.RankSpecies)
	assert.ErrorIs(t, err, taxtree.ErrNilRoot, "nil tree must error")
}

// TestWrapRoot_SingleChildSharedSubtree verifies the synthetic root has
// exactly one child, shares the original subtree by reference, and the
// original tree is untouched.
func TestWrapRoot_SingleChildSharedSubtree(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)
	require.Len(t, tree.Root().Children(), 2, "fixture root has several children")

	wrapped, err := taxtree.WrapRoot(tree)
	require.NoError(t, err)

	root := wrapped.Root()
	assert.Equal(t, taxtree.SyntheticRootID, root.ID)
	assert.Equal(t, taxtree.RankNone, root.Rank, "synthetic root is unranked")
	assert.Zero(t, root.Length, "synthetic branch must not add length")

	kids := root.Children()
	require.Len(t, kids, 1, "wrapped root has exactly one child")
	assert.Same(t, tree.Root(), kids[0], "subtree is shared by reference, not copied")

	assert.Equal(t, "root", tree.Root().ID, "original root is unchanged")
	assert.Equal(t, tree.Len()+1, wrapped.Len(), "wrapping adds exactly one node")
}

// TestWrapRoot_Twice verifies a second wrap is rejected (ID collision).
func TestWrapRoot_Twice(t *testing.T) {
	tree, err := taxtree.Build(lineage())
	require.NoError(t, err)

	wrapped, err := taxtree.WrapRoot(tree)
	require.NoError(t, err)

	_, err = taxtree.WrapRoot(wrapped)
	assert.ErrorIs(t, err, taxtree.ErrDuplicateID, "double wrap collides on the synthetic ID")
}

// TestRank_EnumSurface verifies the closed-set helpers.
func TestRank_EnumSurface(t *testing.T) {
	assert.True(t, taxtree.RankAuto.Valid())
	assert.True(t, taxtree.RankSpecies.Valid())
	assert.False(t, taxtree.RankNone.Valid(), "no-rank is not a selector")
	assert.False(t, taxtree.Rank("superkingdom").Valid(), "outside the enum")

	assert.Equal(t, 0, taxtree.RankKingdom.Depth())
	assert.Equal(t, 6, taxtree.RankSpecies.Depth())
	assert.Equal(t, -1, taxtree.RankAuto.Depth())

	ranks := taxtree.Ranks()
	require.Len(t, ranks, 8)
	assert.Equal(t, taxtree.RankAuto, ranks[0], "auto listed first")
	assert.Equal(t, taxtree.RankSpecies, ranks[len(ranks)-1])
}
