package cost

import (
	"context"

	"github.com/hitset/hitset/dataset"
)

// Strategy is the integer cost-assignment selector of spec.md §4.6,
// matching the façade's strategy_param values 1-3 (0 selects plain
// enumeration with no cost assignment and is not represented here).
type Strategy int

const (
	// Fixed assigns cost 1 to every element.
	Fixed Strategy = 1
	// UniqueRandom assigns a uniform permutation of {1,...,|B|}.
	UniqueRandom Strategy = 2
	// Inconsistency assigns cost(e) = I(B) - I(B\{e}).
	Inconsistency Strategy = 3
)

// Assigner annotates every element of b with a nonnegative cost, in place,
// via dataset.Dataset.SetCost.
type Assigner interface {
	Assign(ctx context.Context, b *dataset.Dataset) error
}
