package solver

import (
	"time"

	"github.com/hitset/hitset/formula"
)

// Method selects which kernel strategy a run uses.
type Method string

const (
	MethodKernel    Method = "kernel"    // Expand–Shrink (spec.md §4.3.1)
	MethodRemainder Method = "remainder" // Shrink–Expand (spec.md §4.3.2)
)

// Config is the C7 façade's run configuration, mirroring the CLI surface
// of spec.md §6 field for field.
type Config struct {
	// Dataset is the name the record store or on-disk loader resolves.
	Dataset string
	// Alpha is the query formula (required).
	Alpha formula.Formula
	// StrategyParam selects the cost/search pairing: 0 = plain enumeration
	// (costs are assigned as for 1, fixed, and only feed the reported
	// boundary); 1 = hybrid with fixed cost; 2 = hybrid with unique random
	// cost; 3 = hybrid with inconsistency cost.
	StrategyParam int
	// WindowSize is Expand–Shrink's expansion window, validated against
	// |B|. Ignored by Shrink–Expand.
	WindowSize int
	// DivideConquer enables Expand–Shrink's divide-and-conquer shrink.
	DivideConquer bool
	// Method selects Expand–Shrink ("kernel") vs Shrink–Expand ("remainder").
	Method Method
	// RandomSeed seeds StrategyParam == 2's permutation (spec.md §8
	// invariant 7: determinism requires an explicit seed).
	RandomSeed int64
	// Deadline bounds total wall-clock run time (spec.md §5). Zero means
	// no deadline.
	Deadline time.Duration
	// LogDB appends an execution record to the store when true and Store
	// is non-nil (spec.md §6 "--log-db").
	LogDB bool
}

// Validate checks Config against spec.md §4.7's contract, given the size
// of the dataset B the run will operate on.
func (c Config) Validate(datasetSize int) error {
	if c.StrategyParam < 0 || c.StrategyParam > 3 {
		return ErrBadStrategyParam
	}
	if c.Alpha.Trim().Empty() {
		return ErrMissingAlpha
	}
	if c.Method != MethodKernel && c.Method != MethodRemainder {
		return ErrBadMethod
	}
	if c.Method == MethodKernel {
		if datasetSize == 0 {
			if c.WindowSize != 0 {
				return ErrBadWindowSize
			}
		} else if c.WindowSize < 1 || c.WindowSize > datasetSize {
			return ErrBadWindowSize
		}
	}
	return nil
}
