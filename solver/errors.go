package solver

import "errors"

var (
	// ErrBadWindowSize is returned when WindowSize is outside [1, |B|].
	ErrBadWindowSize = errors.New("solver: window_size out of range [1, |B|]")
	// ErrBadStrategyParam is returned when StrategyParam is outside {0,1,2,3}.
	ErrBadStrategyParam = errors.New("solver: strategy_param must be one of 0,1,2,3")
	// ErrBadMethod is returned when Method is neither "kernel" nor "remainder".
	ErrBadMethod = errors.New("solver: method must be \"kernel\" or \"remainder\"")
	// ErrMissingAlpha is returned when Alpha is empty.
	ErrMissingAlpha = errors.New("solver: alpha is required")
	// ErrTimeout is returned when the wall-clock deadline elapses mid-search
	// (spec.md §5/§7). Partial metrics are still populated on Report.
	ErrTimeout = errors.New("solver: wall-clock deadline exceeded")
)
