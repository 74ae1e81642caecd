package ecostat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecodiv/taxtree"
)

// maxRootChildren is the rooted-tree precondition: a root with more
// children is treated as unrooted. Taxonomy roots usually violate this
// (one child per kingdom), which is exactly what taxtree.WrapRoot fixes.
const maxRootChildren = 2

// UniFrac computes phylogenetic beta diversity between the rows of
// values over the given tree. taxonIDs maps value columns onto tree
// nodes (typically the leaves of a rank-pruned tree); sampleIDs labels
// the rows and the resulting matrix.
//
// weighted selects the abundance-weighted variant; normalized divides
// each weighted distance by its per-pair maximum (callers feeding
// rescaled proportions set this). The unweighted variant uses presence
// only: unique observed branch length over total observed branch length.
//
// Values are treated as counts but never validated as integers —
// rescaled proportions are accepted on purpose.
//
// Errors: taxtree.ErrNilRoot, ErrUnrootedTree, ErrMissingTaxon,
// ErrNilMatrix, ErrDimensionMismatch, ErrDuplicateID, ErrNegativeValue.
func UniFrac(values *mat.Dense, sampleIDs []string, tree *taxtree.Tree, taxonIDs []string, weighted, normalized bool) (*DistanceMatrix, error) {
	if values == nil {
		return nil, ErrNilMatrix
	}
	if tree == nil || tree.Root() == nil {
		return nil, taxtree.ErrNilRoot
	}
	rows, cols := values.Dims()
	if rows != len(sampleIDs) {
		return nil, fmt.Errorf("%d rows for %d sample ids: %w", rows, len(sampleIDs), ErrDimensionMismatch)
	}
	if cols != len(taxonIDs) {
		return nil, fmt.Errorf("%d cols for %d taxon ids: %w", cols, len(taxonIDs), ErrDimensionMismatch)
	}
	if err := checkNonNegative(values); err != nil {
		return nil, err
	}
	if n := len(tree.Root().Children()); n > maxRootChildren {
		return nil, fmt.Errorf("root has %d children: %w", n, ErrUnrootedTree)
	}

	colOf := make(map[string]int, len(taxonIDs))
	for j, id := range taxonIDs {
		if _, dup := colOf[id]; dup {
			return nil, fmt.Errorf("taxon %q: %w", id, ErrDuplicateID)
		}
		if _, ok := tree.Find(id); !ok {
			return nil, fmt.Errorf("taxon %q: %w", id, ErrMissingTaxon)
		}
		colOf[id] = j
	}

	branches, totals := subtreeMasses(tree, colOf, values, rows)

	// Per-sample proportions at every branch.
	props := make([][]float64, len(branches))
	for b, br := range branches {
		p := make([]float64, rows)
		for i := 0; i < rows; i++ {
			if totals[i] > 0 {
				p[i] = br.mass[i] / totals[i]
			}
		}
		props[b] = p
	}

	data := mat.NewDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		for j := i + 1; j < rows; j++ {
			var d float64
			if weighted {
				d = weightedPair(branches, props, i, j, normalized)
			} else {
				d = unweightedPair(branches, i, j)
			}
			data.Set(i, j, d)
			data.Set(j, i, d)
		}
	}

	return NewDistanceMatrix(data, sampleIDs)
}

// branch is one tree edge: the node below it, its length, and the
// per-sample abundance mass of its subtree.
type branch struct {
	length float64
	mass   []float64
}

// subtreeMasses accumulates, for every non-root node, the per-sample
// abundance of its subtree (postorder), and returns the per-sample
// totals observed at the root. A node contributes its own column when
// its ID appears in colOf, plus everything below it.
func subtreeMasses(tree *taxtree.Tree, colOf map[string]int, values *mat.Dense, rows int) ([]branch, []float64) {
	var branches []branch
	root := tree.Root()

	var walk func(n *taxtree.Node) []float64
	walk = func(n *taxtree.Node) []float64 {
		mass := make([]float64, rows)
		if j, ok := colOf[n.ID]; ok {
			for i := 0; i < rows; i++ {
				mass[i] = values.At(i, j)
			}
		}
		for _, c := range n.Children() {
			floats.Add(mass, walk(c))
		}
		if n != root {
			branches = append(branches, branch{length: n.Length, mass: mass})
		}

		return mass
	}
	totals := walk(root)

	return branches, totals
}

// weightedPair computes weighted UniFrac between samples i and j:
// Σ b·|pᵢ−pⱼ|, divided by Σ b·(pᵢ+pⱼ) when normalized.
func weightedPair(branches []branch, props [][]float64, i, j int, normalized bool) float64 {
	var num, den float64
	for b, br := range branches {
		pi, pj := props[b][i], props[b][j]
		num += br.length * abs(pi-pj)
		den += br.length * (pi + pj)
	}
	if !normalized {
		return num
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// unweightedPair computes unweighted UniFrac between samples i and j:
// branch length unique to one sample over branch length observed in
// either.
func unweightedPair(branches []branch, i, j int) float64 {
	var unique, total float64
	for _, br := range branches {
		pi, pj := br.mass[i] > 0, br.mass[j] > 0
		switch {
		case pi && pj:
			total += br.length
		case pi || pj:
			total += br.length
			unique += br.length
		}
	}
	if total == 0 {
		return 0
	}

	return unique / total
}
