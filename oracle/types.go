package oracle

import (
	"context"

	"github.com/hitset/hitset/formula"
)

// Oracle decides propositional entailment: Entails reports whether the
// conjunction of b classically entails alpha.
//
// Implementations must be safe to call repeatedly and sequentially within a
// single search (spec.md §5: single-threaded, synchronous core); they need
// not be safe for concurrent use from multiple goroutines.
type Oracle interface {
	Entails(ctx context.Context, b []formula.Formula, alpha formula.Formula) (bool, error)
}

// InconsistencyOracle computes the external inconsistency measure I(B) used
// by the cost package's Inconsistency strategy (spec.md §4.6.3).
type InconsistencyOracle interface {
	Measure(ctx context.Context, b []formula.Formula) (int64, error)
}
