package cost

import (
	"context"

	"github.com/hitset/hitset/dataset"
)

// FixedAssigner implements Strategy Fixed: every element costs 1, so path
// cost (spec.md §4.4) reduces to tree depth.
type FixedAssigner struct{}

var _ Assigner = FixedAssigner{}

// Assign sets every element's cost to 1.
func (FixedAssigner) Assign(_ context.Context, b *dataset.Dataset) error {
	for _, e := range b.Elements() {
		b.SetCost(e, 1)
	}
	return nil
}
