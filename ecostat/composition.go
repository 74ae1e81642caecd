package ecostat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MultiplicativeReplacement estimates zeros in compositional data:
// every zero cell becomes delta, every nonzero cell is scaled by
// (1 − z·delta) where z is the number of zeros in its row, so each
// row's sum-to-1 property is preserved. Rows are closed (divided by
// their sum) first, so raw counts are accepted too.
//
// delta ≤ 0 selects the default (1/cols)². A delta so large that a
// row's nonzero mass would vanish returns ErrBadDelta.
//
// Errors: ErrNilMatrix, ErrNegativeValue, ErrNonPositive (a row with no
// mass has no composition), ErrBadDelta.
func MultiplicativeReplacement(values *mat.Dense, delta float64) (*mat.Dense, error) {
	if values == nil {
		return nil, ErrNilMatrix
	}
	if err := checkNonNegative(values); err != nil {
		return nil, err
	}
	rows, cols := values.Dims()
	if delta <= 0 {
		delta = 1 / float64(cols*cols)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		src := values.RawRowView(i)
		total := floats.Sum(src)
		if total == 0 {
			return nil, fmt.Errorf("row %d has no mass: %w", i, ErrNonPositive)
		}

		var zeros int
		for _, v := range src {
			if v == 0 {
				zeros++
			}
		}
		scale := 1 - float64(zeros)*delta
		if scale <= 0 {
			return nil, fmt.Errorf("row %d: %d zeros at delta %g: %w", i, zeros, delta, ErrBadDelta)
		}

		dst := out.RawRowView(i)
		for j, v := range src {
			if v == 0 {
				dst[j] = delta
			} else {
				dst[j] = v / total * scale
			}
		}
	}

	return out, nil
}

// CLR applies the centered log-ratio transform row by row:
// clr(x)ᵢ = ln(xᵢ / g(x)) where g is the row's geometric mean. Every
// cell must be strictly positive — run MultiplicativeReplacement first
// when zeros are possible.
//
// Errors: ErrNilMatrix, ErrNonPositive.
func CLR(values *mat.Dense) (*mat.Dense, error) {
	if values == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := values.Dims()

	out := mat.NewDense(rows, cols, nil)
	logs := make([]float64, cols)
	for i := 0; i < rows; i++ {
		src := values.RawRowView(i)
		for j, v := range src {
			if v <= 0 {
				return nil, fmt.Errorf("cell (%d,%d)=%g: %w", i, j, v, ErrNonPositive)
			}
			logs[j] = math.Log(v)
		}
		center := stat.Mean(logs, nil)
		dst := out.RawRowView(i)
		for j := range logs {
			dst[j] = logs[j] - center
		}
	}

	return out, nil
}

// EuclideanDistances returns the full pairwise L2 distance matrix
// between the rows of values. Every cell is computed independently —
// both triangles and the diagonal — mirroring general-purpose pairwise
// routines. Callers that need guaranteed exact symmetry should pass the
// result through SymmetrizeUpper.
//
// Errors: ErrNilMatrix.
func EuclideanDistances(values *mat.Dense) (*mat.Dense, error) {
	if values == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := values.Dims()

	out := mat.NewDense(rows, rows, nil)
	diff := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			floats.SubTo(diff, values.RawRowView(i), values.RawRowView(j))
			out.Set(i, j, floats.Norm(diff, 2))
		}
	}

	return out, nil
}
