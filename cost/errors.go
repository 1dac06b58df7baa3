package cost

import "errors"

var (
	// ErrUnknownStrategy is returned by New for a Strategy value outside 1-3.
	ErrUnknownStrategy = errors.New("cost: unknown strategy")

	// ErrNilInconsistencyOracle is returned when Inconsistency is
	// constructed without an oracle.InconsistencyOracle.
	ErrNilInconsistencyOracle = errors.New("cost: inconsistency strategy requires a non-nil oracle")
)
