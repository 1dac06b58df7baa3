package formula_test

import (
	"fmt"

	"github.com/hitset/hitset/formula"
)

// ExampleParse demonstrates parsing a formula with mixed connectives and
// inspecting its top-level shape.
func ExampleParse() {
	n, err := formula.Parse("a && (b || !c) => d")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Kind == formula.KindImplies)
	// Output:
	// true
}
