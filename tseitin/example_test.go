package tseitin_test

import (
	"fmt"
	"strings"

	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/tseitin"
)

// ExampleEncode demonstrates encoding a formula set into DIMACS CNF text.
func ExampleEncode() {
	n, err := formula.Parse("a && b")
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	cnf, err := tseitin.Encode([]*formula.Node{n})
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}
	var sb strings.Builder
	if err := cnf.WriteDIMACS(&sb); err != nil {
		fmt.Println("write error:", err)
		return
	}
	fmt.Println(strings.HasPrefix(sb.String(), "p cnf"))
	// Output:
	// true
}
