// Package search implements the two Search Strategy variants of spec.md
// §4.5: Plain enumeration (exhaustive BFS/DFS reference, no pruning) and
// Hybrid priority search (best-first branch-and-bound over a min-heap
// keyed by the negated edge cost, container/heap-based as in package
// dijkstra's nodePQ).
//
// Both strategies materialise nodes on a *hstree.Tree by repeatedly asking
// a kernel.Strategy for the kernel of each node's reduced dataset; a node
// whose reduced dataset no longer entails alpha becomes a LEAF.
package search
