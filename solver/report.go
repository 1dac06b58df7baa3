package solver

import (
	"time"

	"github.com/hitset/hitset/formula"
)

// Report is the C7 façade's output, per spec.md §4.7: "reports execution
// time, peak memory, kernel/branch counts, tree depth, pruned count,
// incumbent boundary, the optimal hitting set."
//
// On a timeout (spec.md §5/§7), Duration and PeakMemBytes are populated but
// the count fields are left at their zero value ("other counters null")
// and Err wraps ErrTimeout.
type Report struct {
	Duration     time.Duration
	PeakMemBytes int64
	KernelCount  int
	BranchCount  int
	PrunedCount  int
	TreeDepth    int
	HasBoundary  bool
	Boundary     float64
	HittingSet   []formula.Formula
	// Err is non-nil when the run ended with an error: ErrTimeout on a
	// deadline, or an error from cost assignment, the search, or the
	// execution-log write. Run itself also returns Err as its error value.
	Err error
}
