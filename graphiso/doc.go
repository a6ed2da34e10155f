// Package graphiso decides graph isomorphism and finds isomorphisms
// between core.Graph values, built on top of package coset's
// individualization/refinement search.
//
// Isomorphic maps each graph's vertex set onto 0..n-1 (sorted by vertex
// ID for determinism), refines by degree at the root and by adjacency to
// the most recently individualized vertex at every deeper level, and
// compares discrete leaves by full adjacency agreement. Before paying for
// that search it rejects on cheap invariants: the vertex and edge
// counts, the degree sequence, the multiset of connected-component sizes (found
// by repeated BFS), and cycle presence (via dfs.DetectCycles).
package graphiso
