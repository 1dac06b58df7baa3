package search

import (
	"context"

	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/hstree"
)

// Runner is the C5 capability: drive a hitting-set tree to completion
// starting from its (already-constructed, kernel-unknown) root.
type Runner interface {
	Run(ctx context.Context, tree *hstree.Tree, alpha formula.Formula) error
}
