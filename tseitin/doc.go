// Package tseitin converts a set of formula.Node ASTs into equisatisfiable
// CNF via the standard Tseitin transformation, emitting DIMACS text.
//
// This package is the reference implementation of the "CNF encoder"
// collaborator spec.md §1 places out of scope of the kernel/search core; it
// exists so oracle.Subprocess has a concrete encoder to drive the external
// SAT solver contract of spec.md §6. It assigns one variable per distinct
// atom name (shared across all formulas) and one fresh variable per other
// subformula node, plus one clause set asserting that fresh variable is
// equivalent to its subformula, plus a unit clause asserting the root
// variable of each top-level formula is true.
package tseitin
