package models

import "errors"

// Failure taxonomy for a selection request. Each is a distinct caller-facing
// condition; none is retried internally since identical inputs reproduce the
// same outcome.
var (
	// ErrMissingCatalog means no usable catalog was supplied at all.
	ErrMissingCatalog = errors.New("missing items data")

	// ErrNoValidCandidates means the catalog was present but every entry
	// was filtered out by the value/cost checks.
	ErrNoValidCandidates = errors.New("no valid candidates")

	// ErrNoFeasibleSelection means valid candidates exist but no
	// combination reaches the threshold within the item count and
	// overshoot bounds.
	ErrNoFeasibleSelection = errors.New("no feasible selection for given constraints")
)
