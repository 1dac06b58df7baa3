package oracle_test

import (
	"context"
	"testing"

	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/oracle"
	"github.com/stretchr/testify/require"
)

// evalFormula is a small recursive evaluator over formula.Node, used only
// to drive oracle.Mock in tests.
func evalFormula(f formula.Formula, model map[string]bool) bool {
	n, err := formula.Parse(f)
	if err != nil {
		panic(err)
	}
	return evalNode(n, model)
}

func evalNode(n *formula.Node, model map[string]bool) bool {
	switch n.Kind {
	case formula.KindAtom:
		return model[n.Atom]
	case formula.KindTrue:
		return true
	case formula.KindFalse:
		return false
	case formula.KindNot:
		return !evalNode(n.Child, model)
	case formula.KindAnd:
		return evalNode(n.Left, model) && evalNode(n.Right, model)
	case formula.KindOr:
		return evalNode(n.Left, model) || evalNode(n.Right, model)
	case formula.KindXor:
		return evalNode(n.Left, model) != evalNode(n.Right, model)
	case formula.KindImplies:
		return !evalNode(n.Left, model) || evalNode(n.Right, model)
	case formula.KindIff:
		return evalNode(n.Left, model) == evalNode(n.Right, model)
	default:
		panic("unknown node kind")
	}
}

func allModels(atoms ...string) []map[string]bool {
	n := len(atoms)
	models := make([]map[string]bool, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		m := make(map[string]bool, n)
		for i, a := range atoms {
			m[a] = mask&(1<<uint(i)) != 0
		}
		models = append(models, m)
	}
	return models
}

func TestMock_Entails(t *testing.T) {
	m := &oracle.Mock{Models: allModels("A1", "A2"), Eval: evalFormula}

	ok, err := m.Entails(context.Background(), []formula.Formula{"A1", "A1 => A2"}, "A2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Entails(context.Background(), []formula.Formula{"A1"}, "A2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTableOracle_Entails(t *testing.T) {
	key := oracle.Key([]formula.Formula{"A1", "A1 => A2"})
	to := &oracle.TableOracle{Entailed: map[string]bool{key: true}}

	ok, err := to.Entails(context.Background(), []formula.Formula{"A1 => A2", "A1"}, "A2")
	require.NoError(t, err)
	require.True(t, ok, "Key must be order-independent")

	ok, err = to.Entails(context.Background(), []formula.Formula{"A1"}, "A2")
	require.NoError(t, err)
	require.False(t, ok)
}
