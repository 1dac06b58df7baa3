package formula_test

import (
	"testing"

	"github.com/hitset/hitset/formula"
	"github.com/stretchr/testify/require"
)

func TestParse_Atom(t *testing.T) {
	n, err := formula.Parse("x1")
	require.NoError(t, err)
	require.Equal(t, formula.KindAtom, n.Kind)
	require.Equal(t, "x1", n.Atom)
}

func TestParse_Constants(t *testing.T) {
	n, err := formula.Parse("+")
	require.NoError(t, err)
	require.Equal(t, formula.KindTrue, n.Kind)

	n, err = formula.Parse("-")
	require.NoError(t, err)
	require.Equal(t, formula.KindFalse, n.Kind)
}

func TestParse_Precedence(t *testing.T) {
	// a && b || c should parse as (a && b) || c
	n, err := formula.Parse("a && b || c")
	require.NoError(t, err)
	require.Equal(t, formula.KindOr, n.Kind)
	require.Equal(t, formula.KindAnd, n.Left.Kind)
	require.Equal(t, "c", n.Right.Atom)
}

func TestParse_ImpliesRightAssoc(t *testing.T) {
	// a => b => c should parse as a => (b => c)
	n, err := formula.Parse("a => b => c")
	require.NoError(t, err)
	require.Equal(t, formula.KindImplies, n.Kind)
	require.Equal(t, "a", n.Left.Atom)
	require.Equal(t, formula.KindImplies, n.Right.Kind)
}

func TestParse_Parens(t *testing.T) {
	n, err := formula.Parse("(a || b) && c")
	require.NoError(t, err)
	require.Equal(t, formula.KindAnd, n.Kind)
	require.Equal(t, formula.KindOr, n.Left.Kind)
}

func TestParse_Negation(t *testing.T) {
	n, err := formula.Parse("!a && !(b || c)")
	require.NoError(t, err)
	require.Equal(t, formula.KindAnd, n.Kind)
	require.Equal(t, formula.KindNot, n.Left.Kind)
	require.Equal(t, formula.KindNot, n.Right.Kind)
	require.Equal(t, formula.KindOr, n.Right.Child.Kind)
}

func TestParse_Errors(t *testing.T) {
	cases := []string{"", "  ", "a &&", "(a", "a b", "a &"}
	for _, c := range cases {
		_, err := formula.Parse(formula.Formula(c))
		require.Error(t, err, "input %q should fail to parse", c)
	}
}

func TestFormula_NotAndTrim(t *testing.T) {
	f := formula.Formula("  a && b  ")
	require.Equal(t, formula.Formula("a && b"), f.Trim())
	require.Equal(t, formula.Formula("!(a)"), formula.Formula("a").Not())
	require.True(t, formula.Formula("   ").Empty())
}
