package ecostat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a square distance matrix labeled by the same ID
// list on both axes. Construction enforces the invariants every
// beta-type result must satisfy: exact symmetry and an exactly zero
// diagonal.
type DistanceMatrix struct {
	ids   []string
	index map[string]int
	data  *mat.Dense
}

// NewDistanceMatrix wraps data as a labeled distance matrix.
//
// Validation is exact, not tolerance-based: data[i][j] must equal
// data[j][i] bit-for-bit and every data[i][i] must be 0. Producers that
// cannot guarantee this (independently computed triangles) should run
// SymmetrizeUpper first.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrEmptyID,
// ErrDuplicateID, ErrAsymmetric, ErrNonZeroDiagonal.
func NewDistanceMatrix(data *mat.Dense, ids []string) (*DistanceMatrix, error) {
	if data == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := data.Dims()
	if rows != cols {
		return nil, ErrNonSquare
	}
	if rows != len(ids) {
		return nil, fmt.Errorf("%d rows for %d ids: %w", rows, len(ids), ErrDimensionMismatch)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, ErrEmptyID
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("id %q: %w", id, ErrDuplicateID)
		}
		index[id] = i
	}

	for i := 0; i < rows; i++ {
		if data.At(i, i) != 0 {
			return nil, fmt.Errorf("diagonal (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < cols; j++ {
			if data.At(i, j) != data.At(j, i) {
				return nil, fmt.Errorf("cells (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	idsCopy := make([]string, len(ids))
	copy(idsCopy, ids)

	return &DistanceMatrix{ids: idsCopy, index: index, data: data}, nil
}

// Len returns the number of labeled entities.
func (d *DistanceMatrix) Len() int { return len(d.ids) }

// IDs returns the axis labels in order, as a fresh copy.
func (d *DistanceMatrix) IDs() []string {
	out := make([]string, len(d.ids))
	copy(out, d.ids)

	return out
}

// At returns the distance between positions i and j.
func (d *DistanceMatrix) At(i, j int) float64 { return d.data.At(i, j) }

// AtID returns the distance between the entities labeled a and b.
// Returns ErrUnknownID when either label is not on the matrix.
func (d *DistanceMatrix) AtID(a, b string) (float64, error) {
	i, ok := d.index[a]
	if !ok {
		return 0, fmt.Errorf("id %q: %w", a, ErrUnknownID)
	}
	j, ok := d.index[b]
	if !ok {
		return 0, fmt.Errorf("id %q: %w", b, ErrUnknownID)
	}

	return d.data.At(i, j), nil
}

// Matrix returns the backing dense matrix. It is shared, not copied —
// callers must treat it as read-only.
func (d *DistanceMatrix) Matrix() *mat.Dense { return d.data }

// Condensed returns the strict upper triangle in row-major order:
// (0,1), (0,2) … (n−2,n−1). For n entities the slice has n(n−1)/2
// entries.
func (d *DistanceMatrix) Condensed() []float64 {
	n := len(d.ids)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, d.data.At(i, j))
		}
	}

	return out
}

// SymmetrizeUpper canonicalizes a square matrix from its upper triangle:
// the result is U + Uᵀ − diag(U), i.e. every cell below the diagonal is
// overwritten by its mirror and the diagonal is kept as-is. This repairs
// the not-quite-symmetric output of routines that compute both triangles
// independently, guaranteeing out[i][j] == out[j][i] exactly.
//
// The input is not modified. Errors: ErrNilMatrix, ErrNonSquare.
func SymmetrizeUpper(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows != cols {
		return nil, ErrNonSquare
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, i, m.At(i, i))
		for j := i + 1; j < cols; j++ {
			v := m.At(i, j)
			out.Set(i, j, v)
			out.Set(j, i, v)
		}
	}

	return out, nil
}
