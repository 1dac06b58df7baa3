// Package solver is the C7 façade of spec.md §4.7: it validates a run
// configuration, wires together dataset, cost, kernel, and search into one
// executable run, enforces the wall-clock deadline of spec.md §5, and
// reports the metrics of §4.7 (execution time, peak memory, kernel/branch
// counts, tree depth, pruned count, incumbent boundary, optimal hitting
// set).
//
// Config mirrors the CLI surface of spec.md §6 one-for-one; Run is the
// entire orchestration entry point cmd/hitset calls into.
package solver
