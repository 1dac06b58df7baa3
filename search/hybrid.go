package search

import (
	"container/heap"
	"context"
	"sort"

	"github.com/hitset/hitset/formula"
	"github.com/hitset/hitset/hstree"
	"github.com/hitset/hitset/kernel"
)

// Hybrid implements spec.md §4.5.2: a best-first branch-and-bound search
// over the hitting-set tree, driven by a min-heap keyed by the negated
// edge cost (so the highest-cost edge is expanded soonest), in the shape
// of package dijkstra's nodePQ.
type Hybrid struct {
	Strategy kernel.Strategy
}

var _ Runner = (*Hybrid)(nil)

// Run drives tree to completion: the queue draining to empty is normal
// termination (spec.md §4.5.2).
func (h *Hybrid) Run(ctx context.Context, tree *hstree.Tree, alpha formula.Formula) error {
	pq := make(nodePQ, 0, 16)
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, &nodeItem{node: tree.Root, negCost: 0, seq: seq})
	seq++

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		n := item.node

		hsv := hstree.PathCost(n)
		if hsv >= tree.Boundary {
			n.Pruned = true
			n.State = hstree.KernelPruned
			continue
		}

		k, ok, err := h.Strategy.FindKernel(ctx, n.Dataset, alpha)
		if err != nil {
			return err
		}
		if !ok {
			tree.AddLeafNode(n)
			tree.UpdateBoundary(n)
			continue
		}

		n.State = hstree.KernelSet
		n.Kernel = k

		type pending struct {
			edge formula.Formula
			cost float64
		}
		elems := k.Elements()
		children := make([]pending, len(elems))
		for i, e := range elems {
			children[i] = pending{edge: e, cost: n.Dataset.CostOrZero(e)}
		}
		// Enqueue in descending priority order, so that at ties the
		// highest-priority (earliest-enqueued) child is popped first.
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].cost > children[j].cost
		})

		for _, c := range children {
			bbvalue := n.BBValue
			if c.cost > 0 {
				bbvalue += 1.0 / c.cost
			}
			child := tree.NewChild(n, n.Dataset.WithoutElement(c.edge), c.edge, bbvalue)
			heap.Push(&pq, &nodeItem{node: child, negCost: -c.cost, seq: seq})
			seq++
		}
	}
	return nil
}

// nodeItem pairs a tree node with its queue priority: negCost is the
// negated cost(edge) of the edge that produced it (root uses 0), so a
// standard min-heap pops the highest-cost edge first. seq is the
// insertion order, used as a stable tie-break (spec.md §5: "on equal
// priorities the earlier-enqueued child wins").
type nodeItem struct {
	node    *hstree.Node
	negCost float64
	seq     int
}

// nodePQ is a min-heap of *nodeItem, ordered by negCost ascending with seq
// as the tie-break, in the shape of package dijkstra's nodePQ.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].negCost != pq[j].negCost {
		return pq[i].negCost < pq[j].negCost
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
