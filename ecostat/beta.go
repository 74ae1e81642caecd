package ecostat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// betaKernels dispatches beta metric names to pairwise distances.
var betaKernels = map[string]func(x, y []float64) float64{
	MetricBrayCurtis: BrayCurtis,
	MetricCityblock:  Cityblock,
	MetricJaccard:    Jaccard,
}

// BetaKernels returns the beta metric names this package understands,
// in a fixed order.
func BetaKernels() []string {
	return []string{MetricBrayCurtis, MetricCityblock, MetricJaccard}
}

// BetaDiversity computes the pairwise distance matrix between the rows
// of values under the named metric, labeled by ids. The upper triangle
// is computed and mirrored, so the result is exactly symmetric with a
// zero diagonal. No count-matrix validation is performed: normalized
// (non-integer, sum-to-1) rows are accepted by design.
//
// Errors: ErrUnknownKernel, ErrNilMatrix, ErrDimensionMismatch,
// ErrNegativeValue, plus DistanceMatrix construction errors.
func BetaDiversity(metric string, values *mat.Dense, ids []string) (*DistanceMatrix, error) {
	kernel, ok := betaKernels[metric]
	if !ok {
		return nil, fmt.Errorf("beta metric %q: %w", metric, ErrUnknownKernel)
	}
	if values == nil {
		return nil, ErrNilMatrix
	}
	rows, _ := values.Dims()
	if rows != len(ids) {
		return nil, fmt.Errorf("%d rows for %d ids: %w", rows, len(ids), ErrDimensionMismatch)
	}
	if err := checkNonNegative(values); err != nil {
		return nil, err
	}

	data := mat.NewDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		for j := i + 1; j < rows; j++ {
			d := kernel(values.RawRowView(i), values.RawRowView(j))
			data.Set(i, j, d)
			data.Set(j, i, d)
		}
	}

	return NewDistanceMatrix(data, ids)
}

// BrayCurtis returns the Bray-Curtis dissimilarity Σ|xᵢ−yᵢ| / Σ(xᵢ+yᵢ).
// Two all-zero rows are at distance 0.
func BrayCurtis(x, y []float64) float64 {
	var num, den float64
	for i := range x {
		num += abs(x[i] - y[i])
		den += x[i] + y[i]
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// Cityblock returns the L1 (Manhattan) distance between x and y.
func Cityblock(x, y []float64) float64 {
	diff := make([]float64, len(x))
	floats.SubTo(diff, x, y)

	return floats.Norm(diff, 1)
}

// Jaccard returns the Jaccard distance 1 − |x∩y|/|x∪y| over presence:
// a taxon is present when its value is > 0, magnitudes are ignored.
// Two all-absent rows are at distance 0.
func Jaccard(x, y []float64) float64 {
	var shared, union float64
	for i := range x {
		px, py := x[i] > 0, y[i] > 0
		if px || py {
			union++
		}
		if px && py {
			shared++
		}
	}
	if union == 0 {
		return 0
	}

	return 1 - shared/union
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
