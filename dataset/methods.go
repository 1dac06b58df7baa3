package dataset

import (
	"log/slog"

	"github.com/hitset/hitset/formula"
)

// Add appends f to d if absent; no-op if already present (spec.md §4.2).
func (d *Dataset) Add(f formula.Formula) {
	if d.Contains(f) {
		return
	}
	d.index[f] = len(d.elements)
	d.elements = append(d.elements, f)
}

// AddWithCost appends f (if absent) and records its cost annotation.
func (d *Dataset) AddWithCost(f formula.Formula, cost float64) {
	d.Add(f)
	d.cost[f] = cost
	d.hasCost[f] = true
}

// SetCost assigns cost to f, whether or not f is already present in d. Used
// by package cost to annotate an already-built Dataset, since Fixed/
// UniqueRandom/Inconsistency strategies all run after Add/Load, not during.
func (d *Dataset) SetCost(f formula.Formula, cost float64) {
	d.cost[f] = cost
	d.hasCost[f] = true
}

// AddAtStart prepends f to d if absent; no-op if already present.
func (d *Dataset) AddAtStart(f formula.Formula) {
	if d.Contains(f) {
		return
	}
	d.elements = append([]formula.Formula{f}, d.elements...)
	d.reindex()
}

// Remove deletes f from d if present. If f is absent, Remove is a no-op and
// logs a warning (spec.md §4.2/§7: "Dataset inconsistency").
func (d *Dataset) Remove(f formula.Formula) {
	d.RemoveLogged(f, slog.Default())
}

// RemoveLogged behaves like Remove but logs to an explicit logger, so
// callers (e.g. the façade) can route warnings through their own handler.
func (d *Dataset) RemoveLogged(f formula.Formula, logger *slog.Logger) {
	pos, ok := d.index[f]
	if !ok {
		if logger != nil {
			logger.Warn("dataset: remove of absent element is a no-op", "formula", f.String())
		}
		return
	}
	d.elements = append(d.elements[:pos], d.elements[pos+1:]...)
	delete(d.cost, f)
	delete(d.hasCost, f)
	d.reindex()
}

func (d *Dataset) reindex() {
	for i, e := range d.elements {
		d.index[e] = i
	}
}

// Clone returns an independent deep copy of d's element sequence. Cost
// annotations are copied by value, not aliased (spec.md §4.2: "independent
// deep copy of the element sequence; cost annotations may be shared-read").
func (d *Dataset) Clone() *Dataset {
	out := New()
	out.elements = append([]formula.Formula(nil), d.elements...)
	for f, i := range d.index {
		out.index[f] = i
	}
	for f, c := range d.cost {
		out.cost[f] = c
	}
	for f, v := range d.hasCost {
		out.hasCost[f] = v
	}
	return out
}

// WithoutElement returns a clone of d with e removed, leaving d untouched.
// This is the building block the kernel and search packages use to derive a
// child dataset without aliasing the parent's storage.
func (d *Dataset) WithoutElement(e formula.Formula) *Dataset {
	clone := d.Clone()
	clone.RemoveLogged(e, nil)
	return clone
}

// Split partitions d into a prefix of the first floor(n/2) elements and a
// suffix of the remaining ceil(n/2) elements, per spec.md §3/§4.2.
func (d *Dataset) Split() (prefix, suffix *Dataset) {
	n := len(d.elements)
	mid := n / 2
	prefix = New()
	for _, e := range d.elements[:mid] {
		prefix.Add(e)
		if c, ok := d.Cost(e); ok {
			prefix.cost[e] = c
			prefix.hasCost[e] = true
		}
	}
	suffix = New()
	for _, e := range d.elements[mid:] {
		suffix.Add(e)
		if c, ok := d.Cost(e); ok {
			suffix.cost[e] = c
			suffix.hasCost[e] = true
		}
	}
	return prefix, suffix
}

// Combine returns a new Dataset whose elements are the set union of d and
// other. The insertion order of the result is unspecified beyond "d's
// elements first, then other's elements not already present" — per
// spec.md §4.2, "consumers must not depend on it".
func (d *Dataset) Combine(other *Dataset) *Dataset {
	out := d.Clone()
	for _, e := range other.elements {
		out.Add(e)
		if c, ok := other.Cost(e); ok {
			if _, already := out.Cost(e); !already {
				out.cost[e] = c
				out.hasCost[e] = true
			}
		}
	}
	return out
}
