package dataset

import "errors"

// Sentinel errors returned by Dataset operations.
var (
	// ErrEmptyFormula is not returned by LoadFile or LoadStore: both filter
	// blank lines rather than reject them, per spec.md §4.2.
	ErrEmptyFormula = errors.New("dataset: empty formula")
)
