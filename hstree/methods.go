package hstree

import (
	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
)

// AddChild attaches child to parent: sets child.Level = parent.Level + 1,
// sets child.Parent, and appends child to parent.Children, per spec.md §4.4.
func (t *Tree) AddChild(parent, child *Node) {
	child.Parent = parent
	child.Level = parent.Level + 1
	parent.Children = append(parent.Children, child)
}

// NewChild constructs a child of parent with the given reduced dataset,
// removed edge, and precomputed bbvalue, attaches it via AddChild, and
// returns it.
func (t *Tree) NewChild(parent *Node, reduced *dataset.Dataset, edge formula.Formula, bbvalue float64) *Node {
	child := &Node{
		State:   KernelUnknown,
		Dataset: reduced,
		Edge:    edge,
		HasEdge: true,
		BBValue: bbvalue,
	}
	t.AddChild(parent, child)
	return child
}

// AddLeafNode records n as a leaf: appends it to LeafNodes and marks its
// state, per spec.md §3/§4.4.
func (t *Tree) AddLeafNode(n *Node) {
	n.State = KernelLeaf
	t.LeafNodes = append(t.LeafNodes, n)
}

// PathCost walks from n to the root following Parent pointers,
// accumulating 1/cost(edge) for each edge on the path (cost(edge) read
// from the edge-owning parent's dataset; 0 contribution if cost is
// missing or non-positive), per spec.md §4.4/GLOSSARY.
func PathCost(n *Node) float64 {
	var sum float64
	cur := n
	for cur.Parent != nil {
		if c := cur.Parent.Dataset.CostOrZero(cur.Edge); c > 0 {
			sum += 1.0 / c
		}
		cur = cur.Parent
	}
	return sum
}

// UpdateBoundary lowers t.Boundary to PathCost(leaf) if that is an
// improvement, and records leaf as the node that set it. Boundary is
// monotone non-increasing over a tree's lifetime (spec.md §8 invariant 5).
func (t *Tree) UpdateBoundary(leaf *Node) {
	pc := PathCost(leaf)
	if pc < t.Boundary {
		t.Boundary = pc
		t.boundaryLeaf = leaf
	}
}

// OptimalHittingSet returns the sequence of edges from the most recently
// recorded leaf (LeafNodes[len-1]) up to the root, in leaf-to-root order,
// per spec.md §4.4. This intentionally preserves the documented-ambiguous
// reference behavior (spec.md §9 Design Notes): the most recently recorded
// leaf is not necessarily the one that established the current Boundary.
// Callers that need the provably optimal incumbent should use
// BoundaryLeaf/HittingSetFor instead.
func (t *Tree) OptimalHittingSet() []formula.Formula {
	if len(t.LeafNodes) == 0 {
		return nil
	}
	return HittingSetFor(t.LeafNodes[len(t.LeafNodes)-1])
}

// BoundaryLeaf returns the leaf node that most recently lowered Boundary,
// or nil if no leaf has been recorded yet. This is the corrected
// counterpart to OptimalHittingSet named in spec.md §9 Design Notes: "An
// implementer should bind the incumbent path to the leaf at the moment
// boundary is updated."
func (t *Tree) BoundaryLeaf() *Node { return t.boundaryLeaf }

// HittingSetFor returns the edges from n up to the root, leaf-to-root
// order — the hitting set represented by n's path.
func HittingSetFor(n *Node) []formula.Formula {
	var edges []formula.Formula
	cur := n
	for cur.Parent != nil {
		edges = append(edges, cur.Edge)
		cur = cur.Parent
	}
	return edges
}

// CountKernelsAndBranches sums, over all non-pruned materialized nodes:
// kernels is the count of nodes whose State == KernelSet; branches is the
// total number of children those kernel-bearing nodes have produced
// (spec.md §4.4 "branching factor").
func (t *Tree) CountKernelsAndBranches() (kernels, branches int) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Pruned {
			return
		}
		if n.State == KernelSet {
			kernels++
			branches += len(n.Children)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return kernels, branches
}

// CountPrunedNodes returns the number of nodes marked Pruned anywhere in
// the materialized tree.
func (t *Tree) CountPrunedNodes() int {
	count := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Pruned {
			count++
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return count
}

// TreeDepth returns the maximum Level over the materialized subtree (0 for
// an isolated root), per spec.md §4.4.
func (t *Tree) TreeDepth() int {
	max := t.Root.Level
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Level > max {
			max = n.Level
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return max
}
