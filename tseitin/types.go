package tseitin

import (
	"bufio"
	"fmt"
	"io"
)

// CNF is a DIMACS-style conjunctive normal form formula: NumVars boolean
// variables numbered 1..NumVars, and Clauses, each a disjunction of signed
// variable indices (positive = variable, negative = its negation).
type CNF struct {
	NumVars int
	Clauses [][]int
}

// WriteDIMACS writes c in the DIMACS CNF text format: a
// "p cnf <vars> <clauses>" header followed by one line per clause, each
// terminated by a literal 0, per spec.md §6.
func (c *CNF) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", c.NumVars, len(c.Clauses)); err != nil {
		return err
	}
	for _, clause := range c.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
