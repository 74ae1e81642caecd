// Package abundance: sentinel errors.
//
// Error policy mirrors the rest of the module: package-level sentinels
// only, matched with errors.Is, context attached via %w wrapping at the
// call site when needed.
package abundance

import "errors"

var (
	// ErrNoSamples indicates a table was requested from an empty sample set.
	ErrNoSamples = errors.New("abundance: no samples")

	// ErrNoTaxa indicates no taxa exist at the requested rank, so the
	// table would have zero columns.
	ErrNoTaxa = errors.New("abundance: no taxa at requested rank")

	// ErrEmptyID indicates an empty sample or taxon identifier.
	ErrEmptyID = errors.New("abundance: empty identifier")

	// ErrDuplicateID indicates a sample or taxon was registered twice.
	ErrDuplicateID = errors.New("abundance: duplicate identifier")

	// ErrUnknownTaxon indicates sample counts reference a taxon that was
	// never registered with AddTaxon.
	ErrUnknownTaxon = errors.New("abundance: unknown taxon")

	// ErrBadRank indicates a rank outside the selector enum.
	ErrBadRank = errors.New("abundance: invalid rank")

	// ErrNegativeValue indicates a negative count or abundance.
	ErrNegativeValue = errors.New("abundance: negative value")

	// ErrShapeMismatch indicates label and value dimensions disagree.
	ErrShapeMismatch = errors.New("abundance: labels do not match value shape")
)
