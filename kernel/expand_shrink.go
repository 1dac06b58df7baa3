package kernel

import (
	"context"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/oracle"
)

// iterationSlack bounds the shrink phase's iteration counter at |B'| + k,
// guarding against oracle instability (spec.md §4.3.1).
const iterationSlack = 8

// ExpandShrink implements spec.md §4.3.1: grow B' window-by-window until it
// entails alpha, then shrink it back down to a subset-minimal kernel.
type ExpandShrink struct {
	Oracle oracle.Oracle
	// WindowSize is w >= 1 (spec.md §4.3.1). Window size 1 is the
	// reference setting; w > 1 is a throughput optimisation that
	// preserves minimality because shrink is the sole minimality-
	// establishing phase (spec.md §8 invariant 4).
	WindowSize int
	// DivideConquer selects the divide-and-conquer shrink variant
	// (spec.md §4.3.1) instead of the default linear shrink.
	DivideConquer bool
}

var _ Strategy = (*ExpandShrink)(nil)

// FindKernel implements Strategy.
func (e *ExpandShrink) FindKernel(ctx context.Context, b *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, bool, error) {
	if e.WindowSize < 1 {
		return nil, false, ErrBadWindowSize
	}

	elements := b.Elements()
	n := len(elements)
	bPrime := dataset.New()
	entailedWindow := false

	for iw := 0; iw < n; iw += e.WindowSize {
		end := iw + e.WindowSize
		if end > n {
			end = n
		}
		for _, f := range elements[iw:end] {
			addLike(bPrime, b, f)
		}
		ok, err := e.Oracle.Entails(ctx, bPrime.Elements(), alpha)
		if err != nil {
			return nil, false, err
		}
		if ok {
			entailedWindow = true
			break
		}
	}

	if !entailedWindow {
		// spec.md §9: the reference implementation falls off the end of
		// this loop with an undefined result; the corrected behavior is
		// to report ⊥ (B does not entail alpha).
		return nil, false, nil
	}

	var (
		kernel *dataset.Dataset
		err    error
	)
	if e.DivideConquer {
		kernel, _, err = e.shrinkDC(ctx, bPrime, alpha)
	} else {
		kernel, err = e.shrinkLinear(ctx, bPrime, alpha)
	}
	if err != nil {
		return nil, false, err
	}
	return kernel, true, nil
}

// shrinkLinear removes superfluous elements one at a time, left-to-right,
// never advancing past an element whose removal still entails alpha
// (spec.md §4.3.1 default shrink).
func (e *ExpandShrink) shrinkLinear(ctx context.Context, bPrime *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, error) {
	current := bPrime
	i := 0
	bound := current.Len() + iterationSlack
	iterations := 0
	for i < current.Len() {
		iterations++
		if iterations > bound {
			return nil, ErrIterationBoundExceeded
		}
		elem := current.At(i)
		candidate := current.WithoutElement(elem)
		ok, err := e.Oracle.Entails(ctx, candidate.Elements(), alpha)
		if err != nil {
			return nil, err
		}
		if ok {
			current = candidate
			// i is not advanced: the next element has shifted into position i.
		} else {
			i++
		}
	}
	return current, nil
}

// shrinkDC implements the divide-and-conquer shrink variant of spec.md
// §4.3.1. It returns the shrunk dataset and whether bPrime (as passed in)
// was found to entail alpha.
func (e *ExpandShrink) shrinkDC(ctx context.Context, bPrime *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, bool, error) {
	if bPrime.Len() <= 1 {
		ok, err := e.Oracle.Entails(ctx, bPrime.Elements(), alpha)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return bPrime, true, nil
		}
		return dataset.New(), false, nil
	}

	h1, h2 := bPrime.Split()
	ok1, err := e.Oracle.Entails(ctx, h1.Elements(), alpha)
	if err != nil {
		return nil, false, err
	}
	if ok1 {
		return e.shrinkDC(ctx, h1, alpha)
	}

	ok2, err := e.Oracle.Entails(ctx, h2.Elements(), alpha)
	if err != nil {
		return nil, false, err
	}
	if ok2 {
		return e.shrinkDC(ctx, h2, alpha)
	}

	// Neither half alone entails: fall back to linear shrink on the full
	// set at this call site (spec.md §4.3.1).
	shrunk, err := e.shrinkLinear(ctx, bPrime, alpha)
	if err != nil {
		return nil, false, err
	}
	return shrunk, true, nil
}

// addLike appends f to dst, copying its cost annotation from src if one is
// present, so window-building never loses cost metadata carried on b.
func addLike(dst, src *dataset.Dataset, f formula.Formula) {
	dst.Add(f)
	if c, ok := src.Cost(f); ok {
		dst.SetCost(f, c)
	}
}
