package dataset_test

import (
	"fmt"

	"github.com/hitset/hitset/dataset"
)

// ExampleDataset demonstrates building a Dataset and splitting it.
func ExampleDataset() {
	d := dataset.New()
	d.Add("A1")
	d.Add("A1 => A2")
	d.Add("!A2")

	prefix, suffix := d.Split()
	fmt.Println(prefix.Len(), suffix.Len())
	// Output:
	// 1 2
}
