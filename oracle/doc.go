// Package oracle implements the entailment-oracle capability of spec.md
// §4.1: Entails(B, alpha) decides whether the conjunction of B classically
// entails alpha, equivalently whether B ∪ {!(alpha)} is unsatisfiable.
//
// Oracle is the sole abstraction the kernel and search packages depend on;
// they never construct CNF or invoke a solver directly (spec.md §9 Design
// Notes: "Re-architect behind a entails(B,α) → bool capability").
//
// Two implementations ship:
//
//   - Subprocess: the reference protocol — Tseitin-encode B++[!(alpha)],
//     write DIMACS to a per-call scoped temp file, invoke an external SAT
//     solver binary, parse its final stdout line.
//   - Mock: a deterministic in-memory oracle for tests, deciding entailment
//     by brute force over an explicit list of models. TableOracle is a
//     simpler variant driven by an explicit set of known-entailed subsets.
//
// Failure semantics (spec.md §4.1/§7): solver crash or unparseable output is
// indeterminate, logged as a warning, and treated as "not entailed" — never
// invents an entailment.
package oracle
