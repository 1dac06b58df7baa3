package cost_test

import (
	"context"
	"testing"

	"github.com/hitset/hitset/cost"
	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/stretchr/testify/require"
)

func buildDataset(elems ...formula.Formula) *dataset.Dataset {
	d := dataset.New()
	for _, e := range elems {
		d.Add(e)
	}
	return d
}

func TestFixedAssigner(t *testing.T) {
	d := buildDataset("a", "b", "c")
	a, err := cost.New(cost.Fixed, 0, nil)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	for _, e := range d.Elements() {
		c, ok := d.Cost(e)
		require.True(t, ok)
		require.Equal(t, 1.0, c)
	}
}

func TestRandomAssigner_UniquePermutation(t *testing.T) {
	d := buildDataset("a", "b", "c", "d")
	a, err := cost.New(cost.UniqueRandom, 42, nil)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	seen := make(map[float64]bool)
	for _, e := range d.Elements() {
		c, ok := d.Cost(e)
		require.True(t, ok)
		require.GreaterOrEqual(t, c, 1.0)
		require.LessOrEqual(t, c, float64(d.Len()))
		require.False(t, seen[c], "costs must be unique")
		seen[c] = true
	}
}

func TestRandomAssigner_DeterministicGivenSeed(t *testing.T) {
	d1 := buildDataset("a", "b", "c")
	d2 := buildDataset("a", "b", "c")
	a, err := cost.New(cost.UniqueRandom, 7, nil)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d1))
	require.NoError(t, a.Assign(context.Background(), d2))

	for _, e := range d1.Elements() {
		c1, _ := d1.Cost(e)
		c2, _ := d2.Cost(e)
		require.Equal(t, c1, c2)
	}
}

type fakeIncOracle struct {
	measure func(b []formula.Formula) int64
}

func (f *fakeIncOracle) Measure(_ context.Context, b []formula.Formula) (int64, error) {
	return f.measure(b), nil
}

func TestInconsistencyAssigner(t *testing.T) {
	// I(B) = |B|; removing any element reduces |B| by exactly 1, so every
	// element's cost should be 1.
	d := buildDataset("a", "b", "c")
	oc := &fakeIncOracle{measure: func(b []formula.Formula) int64 { return int64(len(b)) }}
	a, err := cost.New(cost.Inconsistency, 0, oc)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	for _, e := range d.Elements() {
		c, ok := d.Cost(e)
		require.True(t, ok)
		require.Equal(t, 1.0, c)
	}
}

func TestInconsistencyAssigner_ClampsNegative(t *testing.T) {
	d := buildDataset("a", "b")
	oc := &fakeIncOracle{measure: func(b []formula.Formula) int64 {
		if len(b) == 2 {
			return 1 // removing an element would "increase" the measure
		}
		return 5
	}}
	a, err := cost.New(cost.Inconsistency, 0, oc)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	for _, e := range d.Elements() {
		c, _ := d.Cost(e)
		require.Equal(t, 0.0, c)
	}
}

func TestInconsistencyAssigner_PreservesPreloadedCost(t *testing.T) {
	// b.SetCost mirrors what dataset.LoadStore does for a record carrying a
	// stored inconsistency_cost: that value must be fetched from the store,
	// not recomputed, so the oracle must never be asked for I(B\{a}). I(B)
	// itself still measures the whole of B, "a" included.
	d := buildDataset("a", "b", "c")
	d.SetCost("a", 42.0)

	calls := 0
	oc := &fakeIncOracle{measure: func(b []formula.Formula) int64 {
		calls++
		hasA := false
		for _, f := range b {
			if f == "a" {
				hasA = true
			}
		}
		if !hasA {
			t.Fatalf("oracle invoked to recompute preloaded element %q", "a")
		}
		return int64(len(b))
	}}
	a, err := cost.New(cost.Inconsistency, 0, oc)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	aCost, ok := d.Cost("a")
	require.True(t, ok)
	require.Equal(t, 42.0, aCost, "preloaded cost must survive Assign untouched")

	for _, e := range []formula.Formula{"b", "c"} {
		c, ok := d.Cost(e)
		require.True(t, ok)
		require.Equal(t, 1.0, c)
	}
	require.Greater(t, calls, 0, "oracle must still run for elements without a preloaded cost")
}

func TestInconsistencyAssigner_SkipsOracleEntirely_WhenAllCostsPreloaded(t *testing.T) {
	d := buildDataset("a", "b")
	d.SetCost("a", 1.0)
	d.SetCost("b", 2.0)

	oc := &fakeIncOracle{measure: func(b []formula.Formula) int64 {
		t.Fatal("oracle must not be invoked when every element already has a cost")
		return 0
	}}
	a, err := cost.New(cost.Inconsistency, 0, oc)
	require.NoError(t, err)
	require.NoError(t, a.Assign(context.Background(), d))

	aCost, _ := d.Cost("a")
	bCost, _ := d.Cost("b")
	require.Equal(t, 1.0, aCost)
	require.Equal(t, 2.0, bCost)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := cost.New(cost.Strategy(99), 0, nil)
	require.ErrorIs(t, err, cost.ErrUnknownStrategy)
}

func TestNew_InconsistencyRequiresOracle(t *testing.T) {
	_, err := cost.New(cost.Inconsistency, 0, nil)
	require.ErrorIs(t, err, cost.ErrNilInconsistencyOracle)
}
