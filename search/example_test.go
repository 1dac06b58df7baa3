package search_test

import (
	"context"
	"fmt"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/hstree"
	"github.com/hitset/hitset/kernel"
	"github.com/hitset/hitset/oracle"
	"github.com/hitset/hitset/search"
)

// ExamplePlain builds the full hitting-set tree for a contradiction query
// over a single atom: the root kernel needs both A0 and !A0, so removing
// either one defeats the query.
func ExamplePlain() {
	b := dataset.New()
	b.AddWithCost("A0", 1)
	b.AddWithCost("!A0", 1)

	o := &oracle.Mock{Models: allModels("A0"), Eval: evalFormula}
	tree := hstree.New(b)
	runner := &search.Plain{Strategy: &kernel.ExpandShrink{Oracle: o, WindowSize: 1}}

	if err := runner.Run(context.Background(), tree, "A0 && !A0"); err != nil {
		panic(err)
	}
	fmt.Println(len(tree.Root.Children), len(tree.LeafNodes))
	// Output:
	// 2 2
}
