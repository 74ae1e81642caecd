package abundance

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ecodiv/taxtree"
)

// Table is a sample-by-taxon abundance matrix at one taxonomic rank.
// Rows are samples, columns are taxa; both label orders are fixed at
// construction. Treat a Table as read-only: derive new tables with
// Presence, Scale or Normalize instead of writing into Values.
type Table struct {
	samples       []string
	taxa          []string
	data          *mat.Dense
	effectiveRank taxtree.Rank
}

// NewTable builds a Table from row-major values (len = samples×taxa).
// rank records the concrete rank the columns were filtered at.
//
// Errors: ErrNoSamples, ErrNoTaxa, ErrEmptyID, ErrDuplicateID,
// ErrShapeMismatch, ErrNegativeValue.
func NewTable(samples, taxa []string, values []float64, rank taxtree.Rank) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(taxa) == 0 {
		return nil, ErrNoTaxa
	}
	if len(values) != len(samples)*len(taxa) {
		return nil, ErrShapeMismatch
	}
	if err := uniqueNonEmpty(samples); err != nil {
		return nil, err
	}
	if err := uniqueNonEmpty(taxa); err != nil {
		return nil, err
	}
	for _, v := range values {
		if v < 0 {
			return nil, ErrNegativeValue
		}
	}

	data := mat.NewDense(len(samples), len(taxa), nil)
	copy(data.RawMatrix().Data, values)

	return &Table{
		samples:       copyStrings(samples),
		taxa:          copyStrings(taxa),
		data:          data,
		effectiveRank: rank,
	}, nil
}

// Samples returns the row labels in order, as a fresh copy.
func (t *Table) Samples() []string { return copyStrings(t.samples) }

// Taxa returns the column labels in order, as a fresh copy. For UniFrac
// this is the operand-ID list that must be passed alongside Values.
func (t *Table) Taxa() []string { return copyStrings(t.taxa) }

// EffectiveRank returns the concrete rank the table was produced at.
// When the caller requested RankAuto this is the rank it resolved to.
func (t *Table) EffectiveRank() taxtree.Rank { return t.effectiveRank }

// Rows returns the number of samples.
func (t *Table) Rows() int { return len(t.samples) }

// Cols returns the number of taxa.
func (t *Table) Cols() int { return len(t.taxa) }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.data.At(i, j) }

// Values returns the backing matrix. It is shared, not copied — callers
// must not modify it.
func (t *Table) Values() *mat.Dense { return t.data }

// Row copies row i into a fresh slice.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.data)
}

// RowSums returns the per-sample totals.
func (t *Table) RowSums() []float64 {
	sums := make([]float64, t.Rows())
	for i := range sums {
		sums[i] = floats.Sum(t.data.RawRowView(i))
	}

	return sums
}

// Presence returns a new Table with every positive cell replaced by 1
// and every zero kept at 0. Jaccard-style metrics consume this view.
func (t *Table) Presence() *Table {
	out := t.emptyLike()
	out.data.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}

		return 0
	}, t.data)

	return out
}

// Scale returns a new Table with every cell multiplied by f. Used to
// blow normalized proportions up to integer-like magnitudes for
// phylogenetic kernels.
func (t *Table) Scale(f float64) *Table {
	out := t.emptyLike()
	out.data.Scale(f, t.data)

	return out
}

// Normalize returns a new Table with every row divided by its sum, so
// rows sum to 1. Rows whose sum is zero are left as all zeros.
func (t *Table) Normalize() *Table {
	out := t.emptyLike()
	for i := 0; i < t.Rows(); i++ {
		src := t.data.RawRowView(i)
		dst := out.data.RawRowView(i)
		sum := floats.Sum(src)
		if sum == 0 {
			continue
		}
		for j, v := range src {
			dst[j] = v / sum
		}
	}

	return out
}

// emptyLike allocates a zero Table sharing t's labels and rank.
func (t *Table) emptyLike() *Table {
	return &Table{
		samples:       copyStrings(t.samples),
		taxa:          copyStrings(t.taxa),
		data:          mat.NewDense(t.Rows(), t.Cols(), nil),
		effectiveRank: t.effectiveRank,
	}
}

// uniqueNonEmpty validates a label slice.
func uniqueNonEmpty(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return ErrEmptyID
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateID
		}
		seen[id] = struct{}{}
	}

	return nil
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
