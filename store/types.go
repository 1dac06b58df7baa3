package store

import (
	"context"
	"time"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
)

// DatasetRecord is one row of the datasets table: a named formula file the
// façade can load by name (spec.md §6).
type DatasetRecord struct {
	Name string
	Path string
}

// ExecutionRecord is one row of the execution_log table: the metrics the
// solver façade reports at the end of a run (spec.md §4.7).
type ExecutionRecord struct {
	StartedAt     time.Time
	Dataset       string
	Alpha         formula.Formula
	StrategyParam int
	DurationMS    int64
	PeakMemBytes  int64
	KernelCount   int
	BranchCount   int
	PrunedCount   int
	TreeDepth     int
	// HasBoundary is false, and Boundary and HittingSet are left
	// zero-value, when the run recorded no leaf. A timed-out run that had
	// already recorded a leaf carries the incumbent found before the
	// deadline (spec.md §7: "partial metrics written if --log-db").
	HasBoundary bool
	Boundary    float64
	HittingSet  []formula.Formula
}

// Store is the C7 façade's view of the record store (spec.md §6): dataset
// lookup, per-formula cost annotations, and execution-log writes.
type Store interface {
	dataset.AnnotationSource
	ListDatasets(ctx context.Context) ([]DatasetRecord, error)
	LogExecution(ctx context.Context, rec ExecutionRecord) error
	Close() error
}
