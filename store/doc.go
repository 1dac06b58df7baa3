// Package store persists per-formula cost annotations and execution-log
// records in a relational database (spec.md §6 "Record store"), grounded
// on the database/sql + github.com/marcboeker/go-duckdb pairing used by
// the example pack's only relational-storage component
// (panyam-sdl/console/timeseries_db.go).
//
// Three tables back the store:
//
//	datasets(name, path)
//	annotations(dataset, line, formula, random_cost, inconsistency_cost)
//	execution_log(id, started_at, dataset, alpha, strategy_param,
//	    duration_ms, peak_mem_bytes, kernel_count, branch_count,
//	    pruned_count, tree_depth, boundary, hitting_set)
package store
