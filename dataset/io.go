package dataset

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/hitset/hitset/formula"
)

// LoadFile reads a Dataset from a line-per-formula file. Blank lines are
// filtered; original insertion order is preserved (spec.md §4.2).
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	d := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := formula.Formula(scanner.Text()).Trim()
		if line.Empty() {
			continue
		}
		d.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	return d, nil
}

// ToFile writes d's elements to path, one formula per line, no trailing
// annotations (spec.md §4.2).
func (d *Dataset) ToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range d.elements {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return fmt.Errorf("dataset: writing %s: %w", path, err)
		}
	}
	return w.Flush()
}

// AnnotationSource supplies per-formula cost annotations from an external
// record store (spec.md §4.2 "from either an on-disk ... or a record store
// ... supplying (line, random_cost, inconsistency_cost, filename) rows").
// It is satisfied by store.DuckDB; it is declared here (rather than
// depending on package store) to keep dataset free of a storage-layer
// import, following the teacher's leaf-first dependency direction.
type AnnotationSource interface {
	Annotations(ctx context.Context, datasetName string) ([]Annotation, error)
}

// Annotation is one row of per-formula cost metadata as read from a record
// store: the formula text plus its two precomputed cost flavors.
type Annotation struct {
	Line              string
	Formula           formula.Formula
	RandomCost        float64
	HasRandomCost     bool
	InconsistencyCost float64
	HasInconsistency  bool
}

// LoadStore builds a Dataset from an AnnotationSource, preserving the row
// order the store returns and filling in cost annotations for the
// inconsistency cost strategy (spec.md §4.6.3: "Values are fetched lazily
// from the record store rather than recomputed per run").
func LoadStore(ctx context.Context, src AnnotationSource, datasetName string) (*Dataset, error) {
	rows, err := src.Annotations(ctx, datasetName)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading %q from store: %w", datasetName, err)
	}
	d := New()
	for _, row := range rows {
		f := row.Formula.Trim()
		if f.Empty() {
			continue
		}
		d.Add(f)
		if row.HasInconsistency {
			d.cost[f] = row.InconsistencyCost
			d.hasCost[f] = true
		} else if row.HasRandomCost {
			d.cost[f] = row.RandomCost
			d.hasCost[f] = true
		}
	}
	return d, nil
}
