package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveOrderStable(t *testing.T) {
	d := dataset.New()
	d.Add("a")
	d.Add("b")
	d.Add("c")
	d.Add("b") // duplicate, no-op

	require.Equal(t, 3, d.Len())
	require.Equal(t, []formula.Formula{"a", "b", "c"}, d.Elements())

	d.Remove("b")
	require.Equal(t, []formula.Formula{"a", "c"}, d.Elements())
	require.False(t, d.Contains("b"))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	d := dataset.New()
	d.Add("a")
	d.Remove("zzz") // must not panic or mutate
	require.Equal(t, 1, d.Len())
}

func TestAddAtStart(t *testing.T) {
	d := dataset.New()
	d.Add("a")
	d.Add("b")
	d.AddAtStart("z")
	require.Equal(t, []formula.Formula{"z", "a", "b"}, d.Elements())

	d.AddAtStart("a") // already present, no-op
	require.Equal(t, []formula.Formula{"z", "a", "b"}, d.Elements())
}

func TestClone_Independence(t *testing.T) {
	d := dataset.New()
	d.AddWithCost("a", 3)
	d.Add("b")

	clone := d.Clone()
	require.Equal(t, d.Elements(), clone.Elements())

	clone.Add("c")
	require.Equal(t, 2, d.Len(), "mutating the clone must not affect the original")

	c, ok := clone.Cost("a")
	require.True(t, ok)
	require.Equal(t, 3.0, c)
}

func TestWithoutElement(t *testing.T) {
	d := dataset.New()
	d.Add("a")
	d.Add("b")
	d.Add("c")

	child := d.WithoutElement("b")
	require.Equal(t, []formula.Formula{"a", "b", "c"}, d.Elements(), "parent unaffected")
	require.Equal(t, []formula.Formula{"a", "c"}, child.Elements())
}

func TestSplit(t *testing.T) {
	d := dataset.New()
	for _, f := range []formula.Formula{"a", "b", "c", "d", "e"} {
		d.Add(f)
	}
	prefix, suffix := d.Split()
	require.Equal(t, []formula.Formula{"a", "b"}, prefix.Elements())
	require.Equal(t, []formula.Formula{"c", "d", "e"}, suffix.Elements())

	// concatenation is order-preserving
	combined := append(append([]formula.Formula{}, prefix.Elements()...), suffix.Elements()...)
	require.Equal(t, d.Elements(), combined)
}

func TestCombine_SetUnion(t *testing.T) {
	a := dataset.New()
	a.Add("x")
	a.Add("y")
	b := dataset.New()
	b.Add("y")
	b.Add("z")

	combined := a.Combine(b)
	require.ElementsMatch(t, []formula.Formula{"x", "y", "z"}, combined.Elements())
}

func TestCostOrZero_MissingIsZero(t *testing.T) {
	d := dataset.New()
	d.Add("a")
	require.Equal(t, 0.0, d.CostOrZero("a"))
	_, ok := d.Cost("a")
	require.False(t, ok)
}

func TestLoadFile_ToFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.txt")

	original := dataset.New()
	original.Add("a && b")
	original.Add("!c")
	require.NoError(t, original.ToFile(path))

	loaded, err := dataset.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, original.Elements(), loaded.Elements())
}

func TestLoadFile_FiltersBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.txt")
	require.NoError(t, writeLines(path, "a", "", "  ", "b"))

	d, err := dataset.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []formula.Formula{"a", "b"}, d.Elements())
}

func writeLines(path string, lines ...string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
}
