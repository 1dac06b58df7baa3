package solver_test

import (
	"context"
	"fmt"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/oracle"
	"github.com/hitset/hitset/solver"
)

// ExampleRun drives a full façade run over the contradiction-query
// scenario: one atom and its negation, queried against their conjunction.
func ExampleRun() {
	b := dataset.New()
	b.Add("A0")
	b.Add("!A0")
	o := &oracle.Mock{Models: allModels("A0"), Eval: evalFormula}

	cfg := solver.Config{
		Dataset:       "s1",
		Alpha:         "A0 && !A0",
		StrategyParam: 1,
		WindowSize:    1,
		Method:        solver.MethodKernel,
	}
	report, err := solver.Run(context.Background(), cfg, b, o, nil, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(report.KernelCount, report.BranchCount, len(report.HittingSet))
	// Output:
	// 1 2 1
}
