package kernel_test

import (
	"context"
	"fmt"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/kernel"
	"github.com/hitset/hitset/oracle"
)

// ExampleExpandShrink finds the minimal justification for A2 inside
// {A1, A1 => A2, !A2}: the expand phase already entails A2 after the second
// window, so the irrelevant !A2 is never added, and shrinking removes
// nothing from the modus-ponens pair.
func ExampleExpandShrink() {
	b := dataset.New()
	b.Add("A1")
	b.Add("A1 => A2")
	b.Add("!A2")

	o := &oracle.Mock{Models: allModels("A1", "A2"), Eval: evalFormula}
	strat := &kernel.ExpandShrink{Oracle: o, WindowSize: 1}

	k, ok, err := strat.FindKernel(context.Background(), b, "A2")
	if err != nil {
		panic(err)
	}
	fmt.Println(ok, k.Elements())
	// Output:
	// true [A1 A1 => A2]
}
