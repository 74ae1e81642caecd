package ecostat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Kernel names accepted by AlphaDiversity and BetaDiversity. These are
// the statistics library's own vocabulary; callers with friendlier
// public names map onto these before dispatching.
const (
	// MetricShannon is base-2 Shannon entropy of row proportions.
	MetricShannon = "shannon"

	// MetricSimpson is Simpson's diversity index, 1 − Σp².
	MetricSimpson = "simpson"

	// MetricObservedOTUs counts taxa with a positive abundance.
	MetricObservedOTUs = "observed_otus"

	// MetricBrayCurtis is the Bray-Curtis dissimilarity.
	MetricBrayCurtis = "braycurtis"

	// MetricCityblock is the L1 (Manhattan) distance.
	MetricCityblock = "cityblock"

	// MetricJaccard is the Jaccard distance over presence/absence.
	MetricJaccard = "jaccard"
)

// alphaKernels dispatches alpha metric names to per-row statistics.
var alphaKernels = map[string]func(row []float64) float64{
	MetricShannon:      Shannon,
	MetricSimpson:      Simpson,
	MetricObservedOTUs: ObservedOTUs,
}

// AlphaKernels returns the alpha metric names this package understands,
// in a fixed order.
func AlphaKernels() []string {
	return []string{MetricShannon, MetricSimpson, MetricObservedOTUs}
}

// AlphaDiversity computes one alpha-diversity value per row of values,
// in row order (one value per entry of ids). Values are abundances —
// raw counts or normalized proportions both work; every kernel converts
// rows to proportions itself where proportions are needed.
//
// Errors: ErrUnknownKernel, ErrNilMatrix, ErrDimensionMismatch,
// ErrNegativeValue.
func AlphaDiversity(metric string, values *mat.Dense, ids []string) ([]float64, error) {
	kernel, ok := alphaKernels[metric]
	if !ok {
		return nil, fmt.Errorf("alpha metric %q: %w", metric, ErrUnknownKernel)
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

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = kernel(values.RawRowView(i))
	}

	return out, nil
}

// Shannon returns the base-2 Shannon entropy of the row's proportions:
// H = −Σ pᵢ·log₂ pᵢ. An all-zero row has zero entropy.
func Shannon(row []float64) float64 {
	p := proportions(row)
	if p == nil {
		return 0
	}

	// stat.Entropy is natural-log; rescale to bits.
	return stat.Entropy(p) / math.Ln2
}

// Simpson returns Simpson's index of diversity, 1 − Σ pᵢ². An all-zero
// row scores 0.
func Simpson(row []float64) float64 {
	p := proportions(row)
	if p == nil {
		return 0
	}
	var dominance float64
	for _, v := range p {
		dominance += v * v
	}

	return 1 - dominance
}

// ObservedOTUs returns the number of taxa with positive abundance.
func ObservedOTUs(row []float64) float64 {
	var n float64
	for _, v := range row {
		if v > 0 {
			n++
		}
	}

	return n
}

// proportions converts a row to proportions summing to 1, or nil when
// the row has no mass.
func proportions(row []float64) []float64 {
	total := floats.Sum(row)
	if total == 0 {
		return nil
	}
	p := make([]float64, len(row))
	for i, v := range row {
		p[i] = v / total
	}

	return p
}

// checkNonNegative rejects matrices with negative cells.
func checkNonNegative(values *mat.Dense) error {
	rows, cols := values.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if values.At(i, j) < 0 {
				return fmt.Errorf("cell (%d,%d): %w", i, j, ErrNegativeValue)
			}
		}
	}

	return nil
}
