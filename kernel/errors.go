package kernel

import "errors"

var (
	// ErrBadWindowSize is returned when WindowSize < 1. A WindowSize larger
	// than |B| is not rejected here; it makes B a single window.
	ErrBadWindowSize = errors.New("kernel: window size out of range")

	// ErrIterationBoundExceeded is returned when the shrink phase's
	// per-call iteration counter exceeds |B'| + a small slack k, guarding
	// against oracle instability (spec.md §4.3.1 edge cases).
	ErrIterationBoundExceeded = errors.New("kernel: shrink iteration bound exceeded")
)
