// Package dcoset is an in-memory toolkit for double-coset and
// isomorphism search over finite structures: deciding, for two labeled
// objects S1 and S2 and an optional subgroup of S_n, whether some
// permutation in that subgroup carries S1 to S2 under a caller-supplied
// equality.
//
// What it brings together:
//
//	core/bfs/dfs    — thread-safe graph primitives and traversal, reused
//	                  as the structural layer graphiso searches over
//	bitset          — fixed-width bitsets for cell/candidate membership
//	orbitpart       — union-find orbit tracking with minimal representatives
//	partstack       — the ordered-partition stack individualization and
//	                  refinement operate on
//	stabchain       — the stabilizer-chain contract (Full, NewSchreier)
//	refine          — the refinement driver, full-symmetric or subgroup-aware
//	automorphism    — the bounded automorphism pruner
//	coset           — DoubleCoset, the search engine tying it all together
//	graphiso        — a concrete isomorphism-search client over core.Graph
//
// Under the hood, everything revolves around one search: two partition
// stacks descended in lockstep, individualizing points one at a time,
// pruned by discovered automorphisms and restricted to a given subgroup's
// orbits when one is supplied.
package dcoset
