// Package diversity: sentinel errors.
//
// Error policy: the calculator owns exactly two failure kinds of its
// own — an unknown metric and a nil source. Everything else (malformed
// tables, tree construction failures, kernel errors) propagates
// unmodified from the collaborators; the calculator never catches,
// wraps-to-hide, or retries them.
package diversity

import "errors"

var (
	// ErrUnknownMetric indicates a metric outside the applicable enum.
	// The wrapped message enumerates the valid choices.
	ErrUnknownMetric = errors.New("diversity: unknown metric")

	// ErrNilSource indicates New was given a nil data source.
	ErrNilSource = errors.New("diversity: nil source")
)
