package oracle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/tseitin"
)

// Subprocess is the reference Oracle: it shells out to an external CNF
// decision procedure per the protocol of spec.md §4.1/§6.
//
//  1. B' = B ++ [!(alpha)].
//  2. B' is Tseitin-encoded to DIMACS CNF (package tseitin).
//  3. SolverPath is invoked as "solver <cnf-path>"; the final line of its
//     stdout is parsed for "SAT"/"UNSAT".
//
// Each call writes its own uuid-scoped temporary file under TempDir (or
// os.TempDir() if empty) and removes it before returning, so concurrent
// Subprocess values never share a path (spec.md §5 "Shared resources").
type Subprocess struct {
	// SolverPath is the path to the external SAT solver executable.
	SolverPath string
	// TempDir overrides the directory temporary CNF files are written to.
	// Empty means os.TempDir().
	TempDir string
	// Logger receives warnings for indeterminate oracle outcomes. A nil
	// Logger falls back to slog.Default().
	Logger *slog.Logger
}

var _ Oracle = (*Subprocess)(nil)

func (s *Subprocess) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Entails implements Oracle per the reference protocol above.
func (s *Subprocess) Entails(ctx context.Context, b []formula.Formula, alpha formula.Formula) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.SolverPath == "" {
		return false, ErrSolverNotConfigured
	}

	roots := make([]*formula.Node, 0, len(b)+1)
	for _, f := range b {
		n, err := formula.Parse(f)
		if err != nil {
			return false, fmt.Errorf("oracle: parsing dataset formula %q: %w", f, err)
		}
		roots = append(roots, n)
	}
	negAlpha, err := formula.Parse(alpha.Not())
	if err != nil {
		return false, fmt.Errorf("oracle: parsing query negation %q: %w", alpha, err)
	}
	roots = append(roots, negAlpha)

	cnf, err := tseitin.Encode(roots)
	if err != nil {
		return false, fmt.Errorf("oracle: encoding CNF: %w", err)
	}

	cnfPath, err := s.writeCNF(cnf)
	if err != nil {
		return false, fmt.Errorf("oracle: writing CNF file: %w", err)
	}
	defer os.Remove(cnfPath)

	out, err := exec.CommandContext(ctx, s.SolverPath, cnfPath).Output()
	if err != nil {
		if ctx.Err() != nil {
			// The wall-clock alarm fired mid-call; propagate so the façade
			// can report a structured timeout (spec.md §5/§7).
			return false, ctx.Err()
		}
		s.logger().Warn("oracle: solver invocation failed; treating as not entailed",
			"solver", s.SolverPath, "error", err)
		return false, nil
	}

	verdict, ok := lastLine(string(out))
	if !ok {
		s.logger().Warn("oracle: solver produced no output; treating as not entailed",
			"solver", s.SolverPath)
		return false, nil
	}
	switch {
	case strings.Contains(verdict, "UNSAT"):
		return true, nil
	case strings.Contains(verdict, "SAT"):
		return false, nil
	default:
		s.logger().Warn("oracle: solver output unparseable; treating as not entailed",
			"solver", s.SolverPath, "verdict", verdict)
		return false, nil
	}
}

func (s *Subprocess) writeCNF(cnf *tseitin.CNF) (string, error) {
	dir := s.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "hitset-"+uuid.New().String()+".cnf")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := cnf.WriteDIMACS(f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// lastLine returns the last non-blank line of out, and whether one exists.
func lastLine(out string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(out))
	last := ""
	found := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		last = line
		found = true
	}
	return last, found
}

// ErrSolverNotConfigured indicates a Subprocess was used with an empty
// SolverPath.
var ErrSolverNotConfigured = errors.New("oracle: solver path not configured")
