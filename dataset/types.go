package dataset

import "github.com/hitset/hitset/formula"

// Dataset is an insertion-ordered, duplicate-free sequence of formulas with
// per-element cost annotations, per spec.md §3/§4.2.
//
// The zero value is not usable; construct with New.
type Dataset struct {
	elements []formula.Formula
	index    map[formula.Formula]int // formula -> position in elements, for O(1) membership
	cost     map[formula.Formula]float64
	hasCost  map[formula.Formula]bool // distinguishes cost=0 from cost=⊥ (absent)
}

// New returns an empty Dataset.
func New() *Dataset {
	return &Dataset{
		index:   make(map[formula.Formula]int),
		cost:    make(map[formula.Formula]float64),
		hasCost: make(map[formula.Formula]bool),
	}
}

// Len returns the number of elements in d.
func (d *Dataset) Len() int { return len(d.elements) }

// Elements returns d's elements in insertion order. The returned slice
// aliases d's internal storage and must not be mutated by the caller.
func (d *Dataset) Elements() []formula.Formula { return d.elements }

// Contains reports whether f is present in d.
func (d *Dataset) Contains(f formula.Formula) bool {
	_, ok := d.index[f]
	return ok
}

// At returns the element at position i (0-based, insertion order).
func (d *Dataset) At(i int) formula.Formula { return d.elements[i] }

// Cost returns f's cost annotation and whether one is present. A present
// cost is always >= 0 (spec.md §3).
func (d *Dataset) Cost(f formula.Formula) (float64, bool) {
	v, ok := d.hasCost[f]
	if !ok || !v {
		return 0, false
	}
	return d.cost[f], true
}

// CostOrZero returns f's cost, or 0 if absent — the convention search.Hybrid
// uses for path-cost accumulation (spec.md §4.4 path_cost, §4.5.2).
func (d *Dataset) CostOrZero(f formula.Formula) float64 {
	if v, ok := d.Cost(f); ok {
		return v
	}
	return 0
}
