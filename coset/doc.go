// Package coset implements the search engine: the backtracking
// individualization/refinement tree walk that ties partstack,
// orbitpart, stabchain, refine, and automorphism together into a single
// entry point, DoubleCoset.
//
// DoubleCoset decides whether some γ in a given subgroup of S_n (or the
// full symmetric group) carries S1 to S2 under a client-supplied
// equality, descending two partition stacks in lockstep: a left stack
// over S1, fully individualized once to build a search base, and a
// current stack over S2, backtracked over until a discrete leaf
// matches S1. The first matching leaf ends the search, so no
// automorphism of S2 is recorded along the way and the automorphism
// pruner never narrows a candidate set. See DESIGN.md for where this implementation's recursive
// backtracking departs from a textbook iterative primary-orbit
// bookkeeping scheme, and why.
package coset
