package search

import (
	"context"

	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/hstree"
	"github.com/hitset/hitset/kernel"
)

// Plain implements spec.md §4.5.1: exhaustive enumeration of a superset of
// all minimal hitting sets, with no branch-and-bound pruning.
type Plain struct {
	Strategy kernel.Strategy
}

var _ Runner = (*Plain)(nil)

// Run recursively expands tree starting at its root.
func (p *Plain) Run(ctx context.Context, tree *hstree.Tree, alpha formula.Formula) error {
	return p.expand(ctx, tree, tree.Root, alpha)
}

func (p *Plain) expand(ctx context.Context, tree *hstree.Tree, n *hstree.Node, alpha formula.Formula) error {
	k, ok, err := p.Strategy.FindKernel(ctx, n.Dataset, alpha)
	if err != nil {
		return err
	}
	if !ok {
		tree.AddLeafNode(n)
		tree.UpdateBoundary(n)
		return nil
	}

	n.State = hstree.KernelSet
	n.Kernel = k
	for _, e := range k.Elements() {
		cost := n.Dataset.CostOrZero(e)
		bbvalue := n.BBValue
		if cost > 0 {
			bbvalue += 1.0 / cost
		}
		child := tree.NewChild(n, n.Dataset.WithoutElement(e), e, bbvalue)
		if err := p.expand(ctx, tree, child, alpha); err != nil {
			return err
		}
	}
	return nil
}
