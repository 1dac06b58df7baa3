package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
)

// DuckDB is the reference Store implementation, backed by an embedded
// DuckDB file opened through database/sql.
type DuckDB struct {
	mu sync.RWMutex
	db *sql.DB
}

var _ Store = (*DuckDB)(nil)

// OpenDuckDB opens (creating if absent) a DuckDB database at path and
// ensures its schema exists. DuckDB supports a single writer, so callers
// share one *DuckDB across a process (spec.md §5).
func OpenDuckDB(path string) (*DuckDB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	s := &DuckDB{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *DuckDB) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS datasets (
		name VARCHAR PRIMARY KEY,
		path VARCHAR
	);
	CREATE TABLE IF NOT EXISTS annotations (
		dataset VARCHAR,
		line INTEGER,
		formula VARCHAR,
		random_cost DOUBLE,
		inconsistency_cost DOUBLE
	);
	CREATE TABLE IF NOT EXISTS execution_log (
		id INTEGER,
		started_at TIMESTAMP,
		dataset VARCHAR,
		alpha VARCHAR,
		strategy_param INTEGER,
		duration_ms BIGINT,
		peak_mem_bytes BIGINT,
		kernel_count INTEGER,
		branch_count INTEGER,
		pruned_count INTEGER,
		tree_depth INTEGER,
		boundary DOUBLE,
		hitting_set VARCHAR
	);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("store: initializing schema: %w", err)
	}
	return nil
}

// ListDatasets returns every row of the datasets table.
func (s *DuckDB) ListDatasets(ctx context.Context) ([]DatasetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT name, path FROM datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: listing datasets: %w", err)
	}
	defer rows.Close()

	var out []DatasetRecord
	for rows.Next() {
		var rec DatasetRecord
		if err := rows.Scan(&rec.Name, &rec.Path); err != nil {
			return nil, fmt.Errorf("store: scanning dataset row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetDataset resolves a dataset name to its on-disk path, as recorded by
// the datasets table. Returns ErrDatasetNotFound if no such row exists.
func (s *DuckDB) GetDataset(ctx context.Context, name string) (DatasetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec DatasetRecord
	row := s.db.QueryRowContext(ctx, `SELECT name, path FROM datasets WHERE name = ?`, name)
	if err := row.Scan(&rec.Name, &rec.Path); err != nil {
		if err == sql.ErrNoRows {
			return DatasetRecord{}, ErrDatasetNotFound
		}
		return DatasetRecord{}, fmt.Errorf("store: looking up dataset %q: %w", name, err)
	}
	return rec, nil
}

// Annotations implements dataset.AnnotationSource: per-formula cost rows
// for datasetName, ordered by line (spec.md §4.2 "(line, random_cost,
// inconsistency_cost, filename) rows").
func (s *DuckDB) Annotations(ctx context.Context, datasetName string) ([]dataset.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
	SELECT line, formula, random_cost, inconsistency_cost
	FROM annotations
	WHERE dataset = ?
	ORDER BY line
	`
	rows, err := s.db.QueryContext(ctx, query, datasetName)
	if err != nil {
		return nil, fmt.Errorf("store: loading annotations for %q: %w", datasetName, err)
	}
	defer rows.Close()

	var out []dataset.Annotation
	for rows.Next() {
		var (
			line       int
			f          string
			randomCost sql.NullFloat64
			incCost    sql.NullFloat64
		)
		if err := rows.Scan(&line, &f, &randomCost, &incCost); err != nil {
			return nil, fmt.Errorf("store: scanning annotation row: %w", err)
		}
		out = append(out, dataset.Annotation{
			Line:              fmt.Sprint(line),
			Formula:           formula.Formula(f),
			RandomCost:        randomCost.Float64,
			HasRandomCost:     randomCost.Valid,
			InconsistencyCost: incCost.Float64,
			HasInconsistency:  incCost.Valid,
		})
	}
	return out, rows.Err()
}

// LogExecution appends one row to execution_log (spec.md §4.7).
func (s *DuckDB) LogExecution(ctx context.Context, rec ExecutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var boundary sql.NullFloat64
	if rec.HasBoundary {
		boundary = sql.NullFloat64{Float64: rec.Boundary, Valid: true}
	}

	hittingSet := make([]string, len(rec.HittingSet))
	for i, f := range rec.HittingSet {
		hittingSet[i] = f.String()
	}

	const insert = `
	INSERT INTO execution_log (
		id, started_at, dataset, alpha, strategy_param, duration_ms,
		peak_mem_bytes, kernel_count, branch_count, pruned_count,
		tree_depth, boundary, hitting_set
	) VALUES (
		(SELECT COALESCE(MAX(id), 0) + 1 FROM execution_log),
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
	)
	`
	_, err := s.db.ExecContext(ctx, insert,
		rec.StartedAt, rec.Dataset, rec.Alpha.String(), rec.StrategyParam,
		rec.DurationMS, rec.PeakMemBytes, rec.KernelCount, rec.BranchCount,
		rec.PrunedCount, rec.TreeDepth, boundary, strings.Join(hittingSet, ","),
	)
	if err != nil {
		return fmt.Errorf("store: logging execution for %q: %w", rec.Dataset, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *DuckDB) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
