package oracle

import (
	"context"
	"sort"
	"strings"

	"github.com/hitset/hitset/formula"
)

// Mock is a deterministic in-memory Oracle for tests: it evaluates
// entailment over a small explicit propositional model rather than
// shelling out to a solver (spec.md §9: "(c) mock for tests").
//
// Entails reports true iff every assignment in Models that makes all
// formulas in b true also makes alpha true — i.e. Mock treats Models as
// the complete set of assignments under consideration and checks
// classical entailment by brute force over it.
// Callers populate Models themselves (e.g. all 2^n assignments over the
// atoms that appear), so Mock's correctness depends on Models actually
// being exhaustive for the atoms exercised by a given test.
type Mock struct {
	// Models is the exhaustive set of boolean assignments to consider.
	Models []map[string]bool
	// Eval evaluates a formula under a given assignment. Tests supply a
	// small recursive evaluator (e.g. built on package formula's AST).
	Eval func(f formula.Formula, model map[string]bool) bool
}

var _ Oracle = (*Mock)(nil)

// Entails reports whether every model satisfying all of b also satisfies
// alpha, i.e. classical entailment restricted to Models.
func (m *Mock) Entails(_ context.Context, b []formula.Formula, alpha formula.Formula) (bool, error) {
	for _, model := range m.Models {
		allTrue := true
		for _, f := range b {
			if !m.Eval(f, model) {
				allTrue = false
				break
			}
		}
		if allTrue && !m.Eval(alpha, model) {
			return false, nil
		}
	}
	return true, nil
}

// TableOracle is a simpler Mock driven by an explicit whitelist of
// entailed subsets, keyed by their sorted, comma-joined formula text. It is
// convenient for unit tests that only need a handful of fixed B/alpha
// scenarios rather than a full truth-table evaluator.
type TableOracle struct {
	// Entailed maps a canonical key (see Key) to whether that subset
	// entails the formula under test.
	Entailed map[string]bool
}

var _ Oracle = (*TableOracle)(nil)

// Key canonicalizes b into a stable lookup key: formulas sorted and
// comma-joined. Order-independence matches entailment's set semantics.
func Key(b []formula.Formula) string {
	strs := make([]string, len(b))
	for i, f := range b {
		strs[i] = f.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, ",")
}

// Entails looks up b (order-independently) in Entailed; missing keys are
// treated as "not entailed" (the conservative default for an incomplete
// table).
func (t *TableOracle) Entails(_ context.Context, b []formula.Formula, _ formula.Formula) (bool, error) {
	return t.Entailed[Key(b)], nil
}
