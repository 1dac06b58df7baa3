// Package dataset implements the ordered formula collection B of spec.md
// §3/§4.2: an insertion-ordered, duplicate-free sequence of formula.Formula
// values, each with an optional nonnegative cost annotation.
//
// Insertion order is stable and significant — kernel.ExpandShrink processes
// elements left-to-right. A cost of "absent" is distinct from a cost of
// zero (spec.md §3: "a cost = ⊥ is legal only for strategy 1 (fixed) during
// bootstrap; search code treats missing/zero costs as contributing 0 to
// path cost").
//
// Dataset is not safe for concurrent mutation; per spec.md §5 the core is
// single-threaded and datasets are read-only once handed to a search.
package dataset
