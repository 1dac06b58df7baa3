// Command hitset runs the kernel-extraction hitting-set-tree search of
// spec.md against a named dataset, per the CLI surface of spec.md §6.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
