// Package partstack implements an ordered-partition stack: a nested
// sequence of ordered partitions π_0 ⊑ π_1 ⊑ … ⊑ π_d of {0..n-1}, stored
// as a permutation (entries) plus a per-position boundary marker
// (levels), so that popping back to an earlier depth is one O(n) pass
// over levels and cell membership at any depth is recovered by a single
// O(n) scan.
//
// The algorithmic shape (begin/end cell intervals, splitting elements
// within an interval by a classifying key) follows a splitting-tree
// design, adapted from a tree-of-blocks model to a depth-indexed stack
// model — a backtracking search needs cheap push/pop-by-depth, not a
// persistent tree.
package partstack
