package hstree

import (
	"math"

	"github.com/hitset/hitset/dataset"
	"github.com/hitset/hitset/formula"
)

// KernelState tags what a Node's Kernel field currently represents, per
// spec.md §3: "kernel (one of: a concrete sequence of formulas = the
// kernel found here, the sentinel LEAF, the sentinel PRUNED, or ∅ meaning
// 'not yet computed')".
type KernelState int

const (
	// KernelUnknown means find_kernel has not yet been invoked at this node.
	KernelUnknown KernelState = iota
	// KernelLeaf means find_kernel returned ⊥: the reduced dataset no
	// longer entails alpha.
	KernelLeaf
	// KernelPruned means the node was cut off by branch-and-bound before
	// its kernel was (or needed to be) computed.
	KernelPruned
	// KernelSet means Kernel holds a concrete kernel Dataset.
	KernelSet
)

// Node is one node of a hitting-set tree (spec.md §3).
type Node struct {
	// State reports which of Kernel/LEAF/PRUNED/unknown this node holds.
	State KernelState
	// Kernel holds the concrete kernel Dataset when State == KernelSet.
	Kernel *dataset.Dataset
	// Edge is the formula removed to arrive here from Parent. Zero value
	// (empty string, HasEdge=false) at the root.
	Edge    formula.Formula
	HasEdge bool
	// Level is this node's depth; the root is 0.
	Level int
	// Dataset is the reduced B carried at this node.
	Dataset *dataset.Dataset
	// BBValue is the cumulative path cost from root to this node, as
	// computed at creation time (spec.md §4.5.2). It is stored for
	// observability only; PathCost re-derives the authoritative value from
	// the parent chain to avoid drift from any rewrites.
	BBValue float64
	// Parent is nil only at the root.
	Parent *Node
	// Children is insertion-ordered.
	Children []*Node
	// Pruned is true once branch-and-bound has cut this node off.
	Pruned bool
}

// Tree is a rooted hitting-set tree (spec.md §3).
type Tree struct {
	Root *Node
	// Boundary is the best leaf path-cost seen so far (the incumbent);
	// +Inf until the first leaf is recorded. Monotone non-increasing.
	Boundary float64
	// LeafNodes is insertion-ordered, per spec.md §3.
	LeafNodes []*Node

	boundaryLeaf *Node // the leaf that most recently lowered Boundary
}

// New creates an empty tree whose root carries root (the initial dataset
// B) with an unknown kernel; the caller (package search) is responsible
// for populating Root.Kernel via the kernel strategy.
func New(root *dataset.Dataset) *Tree {
	return &Tree{
		Root: &Node{
			State:   KernelUnknown,
			Dataset: root,
			Level:   0,
		},
		Boundary: math.Inf(1),
	}
}
