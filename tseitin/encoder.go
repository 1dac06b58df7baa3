package tseitin

import "github.com/hitset/hitset/formula"

// Encode builds the CNF conjunction of roots (one fresh top-level unit
// clause per root) using the Tseitin transformation: each subformula gets
// its own fresh variable, related to its children by the standard clause
// patterns for NOT/AND/OR/XOR/IMPLIES/IFF.
//
// Atom names are assigned stable variable numbers shared across all roots
// (the same atom text always maps to the same DIMACS variable), so callers
// encoding "B ++ [!(alpha)]" as documented in oracle.Subprocess get a
// single consistent variable space.
func Encode(roots []*formula.Node) (*CNF, error) {
	e := &encoder{atoms: make(map[string]int), next: 1}
	top := make([]int, 0, len(roots))
	for _, root := range roots {
		v, err := e.visit(root)
		if err != nil {
			return nil, err
		}
		top = append(top, v)
	}
	for _, v := range top {
		e.clauses = append(e.clauses, []int{v})
	}
	return &CNF{NumVars: e.next - 1, Clauses: e.clauses}, nil
}

type encoder struct {
	next    int // next fresh variable number; starts at 1
	atoms   map[string]int
	clauses [][]int
}

func (e *encoder) fresh() int {
	e.next++
	return e.next - 1
}

func (e *encoder) visit(n *formula.Node) (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	switch n.Kind {
	case formula.KindAtom:
		return e.atomVar(n.Atom), nil
	case formula.KindTrue:
		v := e.fresh()
		e.clauses = append(e.clauses, []int{v})
		return v, nil
	case formula.KindFalse:
		v := e.fresh()
		e.clauses = append(e.clauses, []int{-v})
		return v, nil
	case formula.KindNot:
		a, err := e.visit(n.Child)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> !a
		e.clauses = append(e.clauses,
			[]int{-v, -a},
			[]int{v, a},
		)
		return v, nil
	case formula.KindAnd:
		a, err := e.visit(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := e.visit(n.Right)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> (a && b)
		e.clauses = append(e.clauses,
			[]int{-v, a},
			[]int{-v, b},
			[]int{v, -a, -b},
		)
		return v, nil
	case formula.KindOr:
		a, err := e.visit(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := e.visit(n.Right)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> (a || b)
		e.clauses = append(e.clauses,
			[]int{-v, a, b},
			[]int{v, -a},
			[]int{v, -b},
		)
		return v, nil
	case formula.KindXor:
		a, err := e.visit(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := e.visit(n.Right)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> (a xor b)
		e.clauses = append(e.clauses,
			[]int{-v, a, b},
			[]int{-v, -a, -b},
			[]int{v, a, -b},
			[]int{v, -a, b},
		)
		return v, nil
	case formula.KindImplies:
		a, err := e.visit(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := e.visit(n.Right)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> (a => b)  i.e. (!a || b)
		e.clauses = append(e.clauses,
			[]int{v, a},
			[]int{v, -b},
			[]int{-v, -a, b},
		)
		return v, nil
	case formula.KindIff:
		a, err := e.visit(n.Left)
		if err != nil {
			return 0, err
		}
		b, err := e.visit(n.Right)
		if err != nil {
			return 0, err
		}
		v := e.fresh()
		// v <=> (a <=> b)
		e.clauses = append(e.clauses,
			[]int{-v, -a, b},
			[]int{-v, a, -b},
			[]int{v, a, b},
			[]int{v, -a, -b},
		)
		return v, nil
	default:
		return 0, ErrUnknownKind
	}
}

func (e *encoder) atomVar(name string) int {
	if v, ok := e.atoms[name]; ok {
		return v
	}
	v := e.fresh()
	e.atoms[name] = v
	return v
}
