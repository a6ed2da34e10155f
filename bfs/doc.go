// Package bfs provides a production-grade breadth-first search over this
// module's point-set domain (n points 0..n-1, adjacency given by a
// caller-supplied NeighborFunc), returning unweighted shortest-path
// distances, parent links, and visit order.
//
// What
//
//   - Explore points in non-decreasing distance (edge count) from a start point.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from point → distance (edges) from start
//   - Parent: map from point → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a point is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - graphiso uses it for exactly this: finding connected-component sizes
//     as a cheap pre-search isomorphism invariant.
//
// Determinism
//
//	BFS enqueues whatever order NeighborFunc returns; callers that want a
//	reproducible visit sequence should return neighbors in a stable order.
//
// Complexity (V = |points|, E = edges touched by NeighborFunc)
//
//   - Time:   O(V + E)   (each point and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(n, neighbors, 0)
//		if err != nil {
//	      // handle one of:
//	      // ErrNeighborsNil, ErrStartOutOfRange, ErrOptionViolation, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    n, neighbors, 0,
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return curr != skip }),
//		    bfs.WithOnEnqueue(func(p, depth int) { /* ... */ }),
//		    bfs.WithOnDequeue(func(p, depth int) { /* ... */ }),
//		    bfs.WithOnVisit(func(p, depth int) error { /* ... */ return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a point is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a point.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNeighborsNil       if the neighbor closure is nil.
//   - ErrStartOutOfRange    if start is not in [0,n).
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
