package cost

import (
	"context"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/oracle"
)

// InconsistencyAssigner implements Strategy Inconsistency: for each element
// e, cost(e) = I(B) - I(B\{e}), where I is an external inconsistency-
// measure oracle (spec.md §4.6.3). A negative result (removing e increased
// the measure, which a sound inconsistency measure should never do) is
// clamped to 0, preserving the nonnegative-cost invariant of spec.md §3.
type InconsistencyAssigner struct {
	Oracle oracle.InconsistencyOracle
}

var _ Assigner = InconsistencyAssigner{}

// Assign computes I(B) once, then I(B\{e}) for each element not already
// carrying a cost, per spec.md §4.6.3 / SPEC_FULL.md §4.2: values loaded
// from the record store (dataset.LoadStore) are fetched lazily from there
// rather than recomputed per run, so an element with a pre-existing cost
// is left untouched instead of being overwritten by a fresh oracle call.
func (a InconsistencyAssigner) Assign(ctx context.Context, b *dataset.Dataset) error {
	if a.Oracle == nil {
		return ErrNilInconsistencyOracle
	}

	pending := make([]formula.Formula, 0, b.Len())
	for _, e := range b.Elements() {
		if _, ok := b.Cost(e); ok {
			continue
		}
		pending = append(pending, e)
	}
	if len(pending) == 0 {
		return nil
	}

	full, err := a.Oracle.Measure(ctx, b.Elements())
	if err != nil {
		return err
	}

	for _, e := range pending {
		reduced, err := a.Oracle.Measure(ctx, b.WithoutElement(e).Elements())
		if err != nil {
			return err
		}
		delta := float64(full - reduced)
		if delta < 0 {
			delta = 0
		}
		b.SetCost(e, delta)
	}
	return nil
}
