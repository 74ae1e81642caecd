// Package ecostat: sentinel errors.
//
// Error policy: package-level sentinels only, matched with errors.Is.
// Kernels never panic on user input; context is attached with %w at the
// point of failure.
package ecostat

import "errors"

var (
	// ErrUnknownKernel indicates a metric name outside the kernel tables
	// of AlphaDiversity or BetaDiversity.
	ErrUnknownKernel = errors.New("ecostat: unknown kernel name")

	// ErrNilMatrix indicates a nil value matrix.
	ErrNilMatrix = errors.New("ecostat: nil matrix")

	// ErrDimensionMismatch indicates labels and matrix shape disagree.
	ErrDimensionMismatch = errors.New("ecostat: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("ecostat: matrix is not square")

	// ErrAsymmetric indicates a distance matrix violated exact symmetry.
	ErrAsymmetric = errors.New("ecostat: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a distance matrix whose self-distances
	// are not exactly zero.
	ErrNonZeroDiagonal = errors.New("ecostat: diagonal is not zero")

	// ErrEmptyID indicates an empty label.
	ErrEmptyID = errors.New("ecostat: empty identifier")

	// ErrDuplicateID indicates duplicate labels on one axis.
	ErrDuplicateID = errors.New("ecostat: duplicate identifier")

	// ErrUnknownID indicates an AtID lookup with a label that is not on
	// the matrix.
	ErrUnknownID = errors.New("ecostat: unknown identifier")

	// ErrNegativeValue indicates a negative abundance where only
	// non-negative values are defined.
	ErrNegativeValue = errors.New("ecostat: negative value")

	// ErrNonPositive indicates a zero or negative cell fed to a
	// log-ratio transform. Run MultiplicativeReplacement first.
	ErrNonPositive = errors.New("ecostat: non-positive value in log-ratio input")

	// ErrBadDelta indicates a zero-replacement delta so large that some
	// row's nonzero mass would be scaled to zero or below.
	ErrBadDelta = errors.New("ecostat: replacement delta too large")

	// ErrUnrootedTree indicates a UniFrac tree whose root has more than
	// two children. Wrap the tree (taxtree.WrapRoot) before calling.
	ErrUnrootedTree = errors.New("ecostat: tree root has more than two children")

	// ErrMissingTaxon indicates a table column with no matching node in
	// the UniFrac tree.
	ErrMissingTaxon = errors.New("ecostat: taxon not present in tree")
)
