package cost

import (
	"fmt"

	"github.com/hitset/hitset/oracle"
)

// New constructs the Assigner for strategy, per spec.md §4.7's
// strategy_param mapping (1=fixed, 2=random, 3=inconsistency). seed is used
// only by UniqueRandom; incOracle is used only by Inconsistency.
func New(strategy Strategy, seed int64, incOracle oracle.InconsistencyOracle) (Assigner, error) {
	switch strategy {
	case Fixed:
		return FixedAssigner{}, nil
	case UniqueRandom:
		return RandomAssigner{Seed: seed}, nil
	case Inconsistency:
		if incOracle == nil {
			return nil, ErrNilInconsistencyOracle
		}
		return InconsistencyAssigner{Oracle: incOracle}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}
