package formula

import "strings"

// Formula is an opaque propositional sentence in the concrete syntax
// documented in doc.go. The core packages (dataset, kernel, hstree, search,
// cost) never parse a Formula; they treat it as a comparable string key and
// delegate all semantics to an oracle.Oracle.
type Formula string

// String returns the underlying textual formula.
func (f Formula) String() string { return string(f) }

// Trim returns f with leading/trailing whitespace removed. Dataset loaders
// use this to normalize lines read from a file or record store.
func (f Formula) Trim() Formula { return Formula(strings.TrimSpace(string(f))) }

// Empty reports whether f is the empty (blank) formula. Dataset loaders
// filter these out per spec (blank lines are not elements).
func (f Formula) Empty() bool { return strings.TrimSpace(string(f)) == "" }

// Not returns the negation "!(f)" of f. This is a purely textual helper used
// by the reference entailment protocol (oracle.Subprocess), which tests
// B |= alpha by checking B ∪ {!(alpha)} for unsatisfiability.
func (f Formula) Not() Formula { return Formula("!(" + string(f) + ")") }

// NodeKind enumerates the shapes an AST node can take.
type NodeKind int

const (
	// KindAtom is a leaf atom, e.g. "x1".
	KindAtom NodeKind = iota
	// KindTrue is the constant "+".
	KindTrue
	// KindFalse is the constant "-".
	KindFalse
	// KindNot is unary negation "!a".
	KindNot
	// KindAnd is conjunction "a && b".
	KindAnd
	// KindOr is disjunction "a || b".
	KindOr
	// KindXor is exclusive-or "a ^^ b".
	KindXor
	// KindImplies is implication "a => b".
	KindImplies
	// KindIff is biconditional "a <=> b".
	KindIff
)

// Node is one node of a parsed formula's abstract syntax tree.
//
// KindAtom nodes populate Atom; KindNot populates Child; every binary kind
// populates Left and Right. KindTrue/KindFalse populate neither.
type Node struct {
	Kind  NodeKind
	Atom  string
	Child *Node
	Left  *Node
	Right *Node
}
