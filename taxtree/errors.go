// Package taxtree: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX).
//   - Implementations attach context with fmt.Errorf("...: %w", ErrX);
//     sentinels themselves never embed parameter values.
package taxtree

import "errors"

var (
	// ErrNilRoot indicates a Tree was constructed around a nil root node.
	ErrNilRoot = errors.New("taxtree: nil root node")

	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("taxtree: nil node")

	// ErrEmptyID indicates a node or taxon record with an empty ID.
	ErrEmptyID = errors.New("taxtree: empty taxon ID")

	// ErrDuplicateID indicates two nodes in one tree share the same ID.
	ErrDuplicateID = errors.New("taxtree: duplicate taxon ID")

	// ErrNoRoot indicates Build found no root record (ParentID empty or
	// self-referential) among the given taxa.
	ErrNoRoot = errors.New("taxtree: no root taxon")

	// ErrMultipleRoots indicates Build found more than one root record.
	ErrMultipleRoots = errors.New("taxtree: multiple root taxa")

	// ErrUnknownParent indicates a taxon references a ParentID that does
	// not appear among the given records.
	ErrUnknownParent = errors.New("taxtree: unknown parent ID")

	// ErrBadRank indicates a rank outside the closed enum, or a rank that
	// is not concrete where a concrete rank is required (e.g. PruneRank
	// cannot prune to RankAuto or RankNone).
	ErrBadRank = errors.New("taxtree: invalid rank")

	// ErrRankNotFound indicates PruneRank found no node at the requested
	// rank, so the pruned tree would be empty.
	ErrRankNotFound = errors.New("taxtree: no taxa at requested rank")
)
