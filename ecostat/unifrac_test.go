package ecostat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecodiv/ecostat"
	"github.com/katalvlaran/ecodiv/taxtree"
)

// twoKingdomTree builds
//
//	root ── A(kingdom) ── L1, L2 (species)
//	     └─ B(kingdom) ── L3 (species)
//
// with unit branch lengths, already satisfying the ≤2-children rule.
func twoKingdomTree(t *testing.T) *taxtree.Tree {
	t.Helper()
	tree, err := taxtree.Build([]taxtree.Taxon{
		{ID: "root", ParentID: "root", Rank: taxtree.RankNone},
		{ID: "A", ParentID: "root", Rank: taxtree.RankKingdom},
		{ID: "B", ParentID: "root", Rank: taxtree.RankKingdom},
		{ID: "L1", ParentID: "A", Rank: taxtree.RankSpecies},
		{ID: "L2", ParentID: "A", Rank: taxtree.RankSpecies},
		{ID: "L3", ParentID: "B", Rank: taxtree.RankSpecies},
	})
	require.NoError(t, err)

	return tree
}

var unifracTaxa = []string{"L1", "L2", "L3"}

// TestUniFrac_DisjointSamples verifies completely disjoint communities
// are at distance 1 under both variants.
func TestUniFrac_DisjointSamples(t *testing.T) {
	tree := twoKingdomTree(t)
	values := mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 0, 1,
	})
	ids := []string{"S1", "S2"}

	for _, weighted := range []bool{true, false} {
		dm, err := ecostat.UniFrac(values, ids, tree, unifracTaxa, weighted, weighted)
		require.NoError(t, err, "weighted=%v", weighted)
		assert.InDelta(t, 1.0, dm.At(0, 1), 1e-12, "weighted=%v", weighted)
	}
}

// TestUniFrac_IdenticalSamples verifies identical communities are at
// distance 0.
func TestUniFrac_IdenticalSamples(t *testing.T) {
	tree := twoKingdomTree(t)
	values := mat.NewDense(2, 3, []float64{
		2, 1, 3,
		2, 1, 3,
	})
	ids := []string{"S1", "S2"}

	for _, weighted := range []bool{true, false} {
		dm, err := ecostat.UniFrac(values, ids, tree, unifracTaxa, weighted, weighted)
		require.NoError(t, err)
		assert.Zero(t, dm.At(0, 1), "weighted=%v", weighted)
	}
}

// TestUniFrac_PartialOverlap verifies hand-computed distances:
// S1=[1,1,0], S2=[0,1,1] over the two-kingdom tree gives 0.5 weighted
// (normalized) and 0.6 unweighted.
func TestUniFrac_PartialOverlap(t *testing.T) {
	tree := twoKingdomTree(t)
	values := mat.NewDense(2, 3, []float64{
		1, 1, 0,
		0, 1, 1,
	})
	ids := []string{"S1", "S2"}

	dm, err := ecostat.UniFrac(values, ids, tree, unifracTaxa, true, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dm.At(0, 1), 1e-12, "weighted normalized")

	dm, err = ecostat.UniFrac(values, ids, tree, unifracTaxa, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, dm.At(0, 1), 1e-12, "unweighted: 3 unique of 5 observed branches")
}

// TestUniFrac_SampleOrderAndShape verifies the output matrix is indexed
// by exactly the input sample IDs in input order, symmetric, zero
// diagonal.
func TestUniFrac_SampleOrderAndShape(t *testing.T) {
	tree := twoKingdomTree(t)
	values := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	ids := []string{"S3", "S1", "S2"} // deliberately not sorted

	dm, err := ecostat.UniFrac(values, ids, tree, unifracTaxa, true, true)
	require.NoError(t, err)

	assert.Equal(t, ids, dm.IDs(), "row order in = label order out")
	for i := 0; i < 3; i++ {
		assert.Zero(t, dm.At(i, i))
		for j := 0; j < 3; j++ {
			assert.Equal(t, dm.At(i, j), dm.At(j, i))
		}
	}
}

// TestUniFrac_UnrootedTreeRejected verifies a root with three children
// errors until it is wrapped, and that wrapping preserves distances
// against a hand-built single-child-rooted equivalent.
func TestUniFrac_UnrootedTreeRejected(t *testing.T) {
	wide, err := taxtree.Build([]taxtree.Taxon{
		{ID: "root", ParentID: "root", Rank: taxtree.RankNone},
		{ID: "A", ParentID: "root", Rank: taxtree.RankKingdom},
		{ID: "B", ParentID: "root", Rank: taxtree.RankKingdom},
		{ID: "C", ParentID: "root", Rank: taxtree.RankKingdom},
		{ID: "L1", ParentID: "A", Rank: taxtree.RankSpecies},
		{ID: "L2", ParentID: "B", Rank: taxtree.RankSpecies},
		{ID: "L3", ParentID: "C", Rank: taxtree.RankSpecies},
	})
	require.NoError(t, err)

	values := mat.NewDense(2, 3, []float64{
		3, 1, 0,
		0, 1, 2,
	})
	ids := []string{"S1", "S2"}

	_, err = ecostat.UniFrac(values, ids, wide, unifracTaxa, true, true)
	assert.ErrorIs(t, err, ecostat.ErrUnrootedTree, "3-child root is rejected")

	wrapped, err := taxtree.WrapRoot(wide)
	require.NoError(t, err)
	gotWrapped, err := ecostat.UniFrac(values, ids, wrapped, unifracTaxa, true, true)
	require.NoError(t, err, "wrapped tree satisfies the rooted precondition")

	// Hand-build the equivalent tree that is single-child-rooted from the
	// start: same nodes, same branch lengths.
	mkNode := func(id string, rank taxtree.Rank, length float64) *taxtree.Node {
		n := taxtree.NewNode(id, id, rank)
		n.Length = length

		return n
	}
	top := mkNode("top", taxtree.RankNone, 0)
	mid := mkNode("root", taxtree.RankNone, 0)
	require.NoError(t, top.AddChild(mid))
	for _, kingdom := range []string{"A", "B", "C"} {
		k := mkNode(kingdom, taxtree.RankKingdom, 1)
		require.NoError(t, mid.AddChild(k))
		leaf := mkNode("L"+kingdom, taxtree.RankSpecies, 1)
		require.NoError(t, k.AddChild(leaf))
	}
	pre, err := taxtree.New(top)
	require.NoError(t, err)

	gotPre, err := ecostat.UniFrac(values, ids, pre, []string{"LA", "LB", "LC"}, true, true)
	require.NoError(t, err)

	assert.Equal(t, gotPre.At(0, 1), gotWrapped.At(0, 1), "wrapping is distance-preserving")
}

// TestUniFrac_Errors exercises the remaining sentinels.
func TestUniFrac_Errors(t *testing.T) {
	tree := twoKingdomTree(t)
	values := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 0, 1})
	ids := []string{"S1", "S2"}

	_, err := ecostat.UniFrac(nil, ids, tree, unifracTaxa, true, true)
	assert.ErrorIs(t, err, ecostat.ErrNilMatrix)

	_, err = ecostat.UniFrac(values, ids, nil, unifracTaxa, true, true)
	assert.ErrorIs(t, err, taxtree.ErrNilRoot)

	_, err = ecostat.UniFrac(values, []string{"S1"}, tree, unifracTaxa, true, true)
	assert.ErrorIs(t, err, ecostat.ErrDimensionMismatch)

	_, err = ecostat.UniFrac(values, ids, tree, []string{"L1", "L2", "ghost"}, true, true)
	assert.ErrorIs(t, err, ecostat.ErrMissingTaxon)

	_, err = ecostat.UniFrac(values, ids, tree, []string{"L1", "L1", "L3"}, true, true)
	assert.ErrorIs(t, err, ecostat.ErrDuplicateID)
}
