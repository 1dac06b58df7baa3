package oracle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hitset/hitset/formula"
)

// InconsistencySubprocess invokes the external inconsistency-measure oracle
// per spec.md §6: "invoked as `im <file> <mode>`; emits a line
// `o <nonneg-integer>` carrying the measure value."
type InconsistencySubprocess struct {
	// BinaryPath is the path to the "im" executable.
	BinaryPath string
	// Mode is passed as the second positional argument to BinaryPath.
	Mode string
	// TempDir overrides the directory the formula file is written to.
	TempDir string
}

var _ InconsistencyOracle = (*InconsistencySubprocess)(nil)

// Measure writes b as one formula per line and invokes BinaryPath, parsing
// the "o <value>" output line.
func (s *InconsistencySubprocess) Measure(ctx context.Context, b []formula.Formula) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.BinaryPath == "" {
		return 0, ErrSolverNotConfigured
	}

	path, err := s.writeFormulas(b)
	if err != nil {
		return 0, fmt.Errorf("oracle: writing inconsistency input: %w", err)
	}
	defer os.Remove(path)

	out, err := exec.CommandContext(ctx, s.BinaryPath, path, s.Mode).Output()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("oracle: inconsistency measure invocation failed: %w", err)
	}

	line, ok := lastLine(string(out))
	if !ok {
		return 0, fmt.Errorf("oracle: inconsistency measure produced no output")
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "o" {
		return 0, fmt.Errorf("oracle: unparseable inconsistency output %q", line)
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("oracle: inconsistency value %q is not a nonnegative integer", fields[1])
	}
	return v, nil
}

func (s *InconsistencySubprocess) writeFormulas(b []formula.Formula) (string, error) {
	dir := s.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "hitset-im-"+uuid.New().String()+".txt")
	var sb strings.Builder
	for _, f := range b {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
