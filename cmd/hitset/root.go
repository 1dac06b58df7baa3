package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/oracle"
	"github.com/hitset/hitset/solver"
	"github.com/hitset/hitset/store"
)

// cliFlags mirrors the flagged portion of spec.md §6's CLI surface.
type cliFlags struct {
	windowSize    int
	divideConquer bool
	alpha         string
	kernel        bool
	remainder     bool
	logDB         bool
	solverPath    string
	imPath        string
	storePath     string
	randomSeed    int64
	deadline      time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "hitset <dataset-name> <strategy-param: 0..3>",
		Short: "Extract minimal hitting sets over a propositional dataset via kernel search",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHitset(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.windowSize, "sw-size", 1, "expand-shrink window size, validated against |B|")
	f.BoolVar(&flags.divideConquer, "divide-conquer", false, "enable the divide-and-conquer shrink")
	f.BoolVar(&flags.divideConquer, "dc", false, "shorthand for --divide-conquer")
	f.StringVar(&flags.alpha, "alpha", "", "the query formula (required)")
	f.BoolVarP(&flags.kernel, "kernel", "k", false, "use Expand-Shrink (default)")
	f.BoolVarP(&flags.remainder, "remainder", "r", false, "use Shrink-Expand")
	f.BoolVar(&flags.logDB, "log-db", false, "append an execution record to the store")
	f.StringVar(&flags.solverPath, "solver-path", "", "path to the external SAT solver binary")
	f.StringVar(&flags.imPath, "im-path", "", "path to the external inconsistency-measure binary")
	f.StringVar(&flags.storePath, "store-path", "hitset.duckdb", "path to the DuckDB record store")
	f.Int64Var(&flags.randomSeed, "seed", 0, "seed for the unique-random cost strategy")
	f.DurationVar(&flags.deadline, "deadline", 0, "wall-clock deadline for the whole run (0 = none)")

	return cmd
}

func runHitset(cmd *cobra.Command, args []string, flags *cliFlags) error {
	datasetName := args[0]
	strategyParam, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("hitset: strategy-param must be an integer 0..3: %w", err)
	}

	if flags.kernel && flags.remainder {
		return fmt.Errorf("hitset: -k/--kernel and -r/--remainder are mutually exclusive")
	}
	method := solver.MethodKernel
	if flags.remainder {
		method = solver.MethodRemainder
	}

	rec, err := store.OpenDuckDB(flags.storePath)
	if err != nil {
		return fmt.Errorf("hitset: opening store: %w", err)
	}
	defer rec.Close()

	b, err := loadDataset(cmd.Context(), rec, datasetName)
	if err != nil {
		return err
	}

	cfg := solver.Config{
		Dataset:       datasetName,
		Alpha:         formula.Formula(flags.alpha),
		StrategyParam: strategyParam,
		WindowSize:    flags.windowSize,
		DivideConquer: flags.divideConquer,
		Method:        method,
		RandomSeed:    flags.randomSeed,
		Deadline:      flags.deadline,
		LogDB:         flags.logDB,
	}

	oc := &oracle.Subprocess{SolverPath: flags.solverPath}
	var io oracle.InconsistencyOracle
	if flags.imPath != "" {
		io = &oracle.InconsistencySubprocess{BinaryPath: flags.imPath, Mode: "default"}
	}

	report, err := solver.Run(cmd.Context(), cfg, b, oc, io, rec)
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

// loadDataset resolves datasetName via the record store's datasets table,
// falling back to treating datasetName as a direct on-disk path when the
// store has no matching row.
func loadDataset(ctx context.Context, rec *store.DuckDB, datasetName string) (*dataset.Dataset, error) {
	if entry, err := rec.GetDataset(ctx, datasetName); err == nil {
		return dataset.LoadFile(entry.Path)
	} else if err != store.ErrDatasetNotFound {
		return nil, fmt.Errorf("hitset: looking up dataset %q: %w", datasetName, err)
	}

	b, err := dataset.LoadFile(datasetName)
	if err != nil {
		return nil, fmt.Errorf("hitset: loading dataset %q: %w", datasetName, err)
	}
	return b, nil
}

func printReport(cmd *cobra.Command, r *solver.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "duration=%s peak_mem=%d kernels=%d branches=%d pruned=%d depth=%d\n",
		r.Duration, r.PeakMemBytes, r.KernelCount, r.BranchCount, r.PrunedCount, r.TreeDepth)
	if r.HasBoundary {
		fmt.Fprintf(out, "boundary=%g hitting_set=%v\n", r.Boundary, r.HittingSet)
	} else {
		fmt.Fprintln(out, "boundary=none (root did not entail alpha)")
	}
}
