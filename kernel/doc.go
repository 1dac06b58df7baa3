// Package kernel implements the two Kernel Strategy variants of spec.md
// §4.3: Expand–Shrink and its dual Shrink–Expand. Both satisfy:
//
//	find_kernel(B, alpha) -> kernel Dataset, or (nil, false) for ⊥.
//
// A kernel is a subset-minimal K ⊆ B with K ⊨ alpha; Strategy.FindKernel
// returns ok=false when B ⊭ alpha (spec.md §8 invariant 1: "returns ⊥ iff
// B ⊭ alpha").
//
// Both strategies resolve the "possibly-buggy source behaviour" ambiguities
// spec.md §9 Design Notes flags, rather than reproducing them:
//
//   - Expand–Shrink returns ⊥ (not an undefined value) when the oracle
//     reports entailment for no window.
//   - Shrink–Expand emits the empty dataset as the remainder (and reports
//     no kernel) when every element's removal preserves entailment.
package kernel
