package kernel

import (
	"context"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/oracle"
)

// ShrinkExpand implements spec.md §4.3.2, the dual of Expand–Shrink: shrink
// B down to a maximal non-entailing remainder R, then expand back through
// the removal trail and report B \ R as the kernel. When B \ R does not
// entail alpha on its own (possible when B is inconsistent), FindKernel
// instead returns the kernel a linear shrink of B finds, which is then not
// the complement of R.
type ShrinkExpand struct {
	Oracle oracle.Oracle
}

var _ Strategy = (*ShrinkExpand)(nil)

// FindKernel implements Strategy.
func (s *ShrinkExpand) FindKernel(ctx context.Context, b *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, bool, error) {
	entails, err := s.Oracle.Entails(ctx, b.Elements(), alpha)
	if err != nil {
		return nil, false, err
	}
	if !entails {
		return nil, false, nil
	}

	remainder, trail, err := s.shrink(ctx, b, alpha)
	if err != nil {
		return nil, false, err
	}
	remainder, err = s.expand(ctx, remainder, trail, alpha)
	if err != nil {
		return nil, false, err
	}

	if remainder.Len() == 0 {
		// spec.md §9: shrink fell through to the empty set without ever
		// ceasing to entail alpha (only possible if alpha is a tautology,
		// or B itself is empty). Report no kernel rather than B \ ∅ = B.
		return nil, false, nil
	}

	inRemainder := make(map[formula.Formula]bool, remainder.Len())
	for _, f := range remainder.Elements() {
		inRemainder[f] = true
	}

	kernel := dataset.New()
	for _, f := range b.Elements() {
		if inRemainder[f] {
			continue
		}
		addLike(kernel, b, f)
	}

	if kernel.Len() == 0 {
		// B == R as sets: no element was ever pulled into the kernel.
		return nil, false, nil
	}

	// spec.md §8 invariant 2 (K ⊨ alpha) does not follow from R's maximal
	// non-entailment alone: when B itself is inconsistent, B entails alpha
	// only vacuously, so "R ∪ {e} ⊨ alpha" for the single excluded e can
	// hold even though B \ R doesn't entail alpha by itself. Verify before
	// returning, and fall back to a direct linear shrink of B — already
	// known to entail alpha by the check above — when it doesn't hold.
	kernelEntails, err := s.Oracle.Entails(ctx, kernel.Elements(), alpha)
	if err != nil {
		return nil, false, err
	}
	if !kernelEntails {
		fallback := &ExpandShrink{Oracle: s.Oracle}
		kernel, err = fallback.shrinkLinear(ctx, b.Clone(), alpha)
		if err != nil {
			return nil, false, err
		}
		if kernel.Len() == 0 {
			return nil, false, nil
		}
	}
	return kernel, true, nil
}

// shrink removes elements left-to-right, always committing the tentative
// removal, and stops the first time a removal breaks entailment (spec.md
// §4.3.2). It returns the reduced set at the point shrink stopped and the
// trail of removed elements in removal order.
func (s *ShrinkExpand) shrink(ctx context.Context, b *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, []formula.Formula, error) {
	current := b.Clone()
	var trail []formula.Formula

	bound := current.Len() + iterationSlack
	iterations := 0
	for current.Len() > 0 {
		iterations++
		if iterations > bound {
			return nil, nil, ErrIterationBoundExceeded
		}
		elem := current.At(0)
		candidate := current.WithoutElement(elem)
		ok, err := s.Oracle.Entails(ctx, candidate.Elements(), alpha)
		if err != nil {
			return nil, nil, err
		}
		trail = append(trail, elem)
		current = candidate
		if !ok {
			break
		}
	}
	return current, trail, nil
}

// expand walks the removal trail in reverse, tentatively restoring each
// element; an element stays out of R only if restoring it would make R
// entail alpha again, preserving R's maximal non-entailment (spec.md
// §4.3.2).
func (s *ShrinkExpand) expand(ctx context.Context, remainder *dataset.Dataset, trail []formula.Formula, alpha formula.Formula) (*dataset.Dataset, error) {
	r := remainder
	for i := len(trail) - 1; i >= 0; i-- {
		elem := trail[i]
		r.AddAtStart(elem)
		ok, err := s.Oracle.Entails(ctx, r.Elements(), alpha)
		if err != nil {
			return nil, err
		}
		if ok {
			r = r.WithoutElement(elem)
		}
	}
	return r, nil
}
