package cost

import (
	"context"
	"math/rand"

	"github.com/hitset/hitset/dataset"
)

// RandomAssigner implements Strategy UniqueRandom: a uniform permutation of
// {1,...,|B|}, one value per element, deterministic given Seed. It never
// reads a package-level RNG — following builder.WithSeed/WithRand in the
// graph library this module is modelled on, the caller must supply a seed
// explicitly for reproducible runs (spec.md §8 invariant 7, Determinism).
type RandomAssigner struct {
	Seed int64
}

var _ Assigner = RandomAssigner{}

// Assign allocates a random permutation of 1..n over b's n elements, in
// their current insertion order position (index i gets perm[i]).
func (r RandomAssigner) Assign(_ context.Context, b *dataset.Dataset) error {
	n := b.Len()
	if n == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(r.Seed))
	perm := rng.Perm(n) // perm is a permutation of {0,...,n-1}
	for i, e := range b.Elements() {
		b.SetCost(e, float64(perm[i]+1))
	}
	return nil
}
