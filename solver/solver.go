package solver

import (
	"context"
	"runtime"
	"time"

	"github.com/hitset/hitset/cost"
	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/hstree"
	"github.com/hitset/hitset/kernel"
	"github.com/hitset/hitset/oracle"
	"github.com/hitset/hitset/search"
	"github.com/hitset/hitset/store"
)

// Run executes one solver invocation against b: validates cfg, assigns
// costs, builds the search runner, drives it to completion or deadline,
// and returns the metrics of spec.md §4.7.
//
// oc is the entailment oracle; io, when cfg.StrategyParam == 3, is the
// inconsistency oracle the Inconsistency cost strategy calls. rec, when
// non-nil and cfg.LogDB is set, receives one execution-log row.
func Run(ctx context.Context, cfg Config, b *dataset.Dataset, oc oracle.Oracle, io oracle.InconsistencyOracle, rec store.Store) (*Report, error) {
	if err := cfg.Validate(b.Len()); err != nil {
		return nil, err
	}

	if cfg.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Deadline)
		defer cancel()
	}

	start := time.Now()
	report, runErr := run(ctx, cfg, b, oc, io)
	report.Duration = time.Since(start)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	report.PeakMemBytes = int64(m.Sys)

	if cfg.LogDB && rec != nil {
		logErr := rec.LogExecution(context.Background(), executionRecord(cfg, report))
		if runErr == nil {
			runErr = logErr
		}
	}

	report.Err = runErr
	return report, runErr
}

func run(ctx context.Context, cfg Config, b *dataset.Dataset, oc oracle.Oracle, io oracle.InconsistencyOracle) (*Report, error) {
	report := &Report{}

	if err := assignCost(ctx, cfg, b, io); err != nil {
		return report, err
	}

	strategy, err := kernelStrategy(cfg, oc)
	if err != nil {
		return report, err
	}

	runner := searchRunner(cfg, strategy)
	tree := hstree.New(b)

	if err := runner.Run(ctx, tree, cfg.Alpha); err != nil {
		if ctx.Err() != nil {
			fillPartial(report, tree)
			return report, ErrTimeout
		}
		return report, err
	}

	fillComplete(report, tree)
	return report, nil
}

func assignCost(ctx context.Context, cfg Config, b *dataset.Dataset, io oracle.InconsistencyOracle) error {
	strategy := cost.Fixed
	if cfg.StrategyParam >= 1 && cfg.StrategyParam <= 3 {
		strategy = cost.Strategy(cfg.StrategyParam)
	}
	assigner, err := cost.New(strategy, cfg.RandomSeed, io)
	if err != nil {
		return err
	}
	return assigner.Assign(ctx, b)
}

func kernelStrategy(cfg Config, oc oracle.Oracle) (kernel.Strategy, error) {
	switch cfg.Method {
	case MethodKernel:
		return &kernel.ExpandShrink{Oracle: oc, WindowSize: cfg.WindowSize, DivideConquer: cfg.DivideConquer}, nil
	case MethodRemainder:
		return &kernel.ShrinkExpand{Oracle: oc}, nil
	default:
		return nil, ErrBadMethod
	}
}

func searchRunner(cfg Config, strategy kernel.Strategy) search.Runner {
	if cfg.StrategyParam == 0 {
		return &search.Plain{Strategy: strategy}
	}
	return &search.Hybrid{Strategy: strategy}
}

func fillComplete(report *Report, tree *hstree.Tree) {
	report.KernelCount, report.BranchCount = tree.CountKernelsAndBranches()
	report.PrunedCount = tree.CountPrunedNodes()
	report.TreeDepth = tree.TreeDepth()
	if leaf := tree.BoundaryLeaf(); leaf != nil {
		report.HasBoundary = true
		report.Boundary = tree.Boundary
		report.HittingSet = hstree.HittingSetFor(leaf)
	}
}

// fillPartial populates only execution-time-safe fields on a timed-out run
// (spec.md §5 "partial results are flushed ... other counters null").
func fillPartial(report *Report, tree *hstree.Tree) {
	if leaf := tree.BoundaryLeaf(); leaf != nil {
		report.HasBoundary = true
		report.Boundary = tree.Boundary
		report.HittingSet = hstree.HittingSetFor(leaf)
	}
}

func executionRecord(cfg Config, report *Report) store.ExecutionRecord {
	return store.ExecutionRecord{
		StartedAt:     time.Now(),
		Dataset:       cfg.Dataset,
		Alpha:         cfg.Alpha,
		StrategyParam: cfg.StrategyParam,
		DurationMS:    report.Duration.Milliseconds(),
		PeakMemBytes:  report.PeakMemBytes,
		KernelCount:   report.KernelCount,
		BranchCount:   report.BranchCount,
		PrunedCount:   report.PrunedCount,
		TreeDepth:     report.TreeDepth,
		HasBoundary:   report.HasBoundary,
		Boundary:      report.Boundary,
		HittingSet:    report.HittingSet,
	}
}
