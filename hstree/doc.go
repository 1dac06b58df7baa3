// Package hstree implements the hitting-set tree data model of spec.md
// §3/§4.4: a rooted tree whose nodes carry a (possibly not-yet-computed)
// kernel, the edge formula removed to reach them from their parent, a
// cumulative path cost, and pruned/leaf state; and whose tree-level state
// tracks the branch-and-bound incumbent (boundary) and the insertion-
// ordered list of leaves.
//
// hstree is used by both search.Plain and search.Hybrid; it owns no
// knowledge of the kernel strategy or oracle that populate its nodes.
package hstree
