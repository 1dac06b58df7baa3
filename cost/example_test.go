package cost_test

import (
	"context"
	"fmt"

	"github.com/hitset/hitset/cost"
	"github.com/hitset/hitset/dataset"
)

// ExampleNew demonstrates assigning fixed unit costs to a Dataset.
func ExampleNew() {
	d := dataset.New()
	d.Add("A1")
	d.Add("A1 => A2")

	assigner, err := cost.New(cost.Fixed, 0, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := assigner.Assign(context.Background(), d); err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := d.Cost("A1")
	fmt.Println(c)
	// Output:
	// 1
}
