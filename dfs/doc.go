// Package dfs implements depth-first search traversal and cycle detection
// over this module's point-set domain: n points 0..n-1, adjacency given by
// a caller-supplied NeighborFunc, the same domain bfs, partstack,
// orbitpart, and coset operate over.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Full-graph (forest) traversal via WithFullTraversal
//   - DetectCycles: reports the cycles of an undirected graph closed by
//     the back edges of a depth-first search, one cycle per back edge,
//     using vertex coloring (White, Gray, Black) and canonical signature
//     deduplication. Not every simple cycle is listed: a cycle that is
//     not closed by a single back edge is not reported.
//
// Why:
//   - graphiso uses DetectCycles as a cheap pre-search isomorphism
//     invariant: cycle presence is preserved by any isomorphism, so a
//     mismatch rejects without paying for the double-coset search.
//   - DFS itself is not called by graphiso; it is the general traversal
//     over the same n/NeighborFunc point-set domain.
//
// Key Types & Constants:
//
//   - PointState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C*L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length; normalization is O(L))
//
// Errors:
//
//   - ErrNeighborsNil        neighbor closure is nil
//   - ErrStartOutOfRange     start point not in [0,n)
//   - context.Canceled       DFS canceled via context
//   - hook errors            propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(n int, neighbors NeighborFunc, start int, opts ...Option) (*DFSResult, error)
//     perform depth-first traversal from start
//   - DetectCycles(n int, neighbors NeighborFunc) (bool, [][]int, error)
//     report existence and the list of back-edge cycles
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor(), WithFullTraversal()
package dfs
