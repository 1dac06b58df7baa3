package kernel

import (
	"context"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
)

// Strategy is the C3 capability: find a subset-minimal kernel of b that
// entails alpha, or report that none exists.
type Strategy interface {
	// FindKernel returns (kernel, true) if b |= alpha, with kernel
	// subset-minimal for that property; otherwise (nil, false).
	FindKernel(ctx context.Context, b *dataset.Dataset, alpha formula.Formula) (*dataset.Dataset, bool, error)
}
