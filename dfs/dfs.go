// Package dfs implements depth-first search (single-source and forest) over
// this module's point-set domain: n points 0..n-1, adjacency given by a
// caller-supplied NeighborFunc. It supports cancellation, pre- and
// post-order hooks, depth and neighbor limits, full-graph traversal, and
// diagnostics.
//
// Key features:
//   - DFS(n, neighbors, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on point discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants, before recording.
//   - WithMaxDepth(limit)       stops recursion beyond given depth (>=0).
//   - WithFilterNeighbor(fn)    filters neighbor points; return false to skip.
//
// Errors:
//
//   - ErrNeighborsNil           if neighbors is nil.
//   - ErrStartOutOfRange        if start is not in [0,n) and FullTraversal is unset.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import "fmt"

// NeighborFunc returns the points adjacent to p. Implementations should
// return them in a stable order so DFS's visit sequence is reproducible.
type NeighborFunc func(p int) []int

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	n         int
	neighbors NeighborFunc
	opts      DFSOptions
	res       *DFSResult
}

// DFS performs depth-first search over n points 0..n-1. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise, it
// starts only from start. Returns DFSResult or error if aborted by context
// or hook.
func DFS(n int, neighbors NeighborFunc, start int, opts ...Option) (*DFSResult, error) {
	if neighbors == nil {
		return nil, ErrNeighborsNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, ErrStartOutOfRange
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}

	walker := &dfsWalker{n: n, neighbors: neighbors, opts: dopts, res: res}

	if dopts.FullTraversal {
		for p := 0; p < n; p++ {
			if !res.Visited[p] {
				if err := walker.traverse(p, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits point p at given depth, recursing to neighbors. It
// honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(p, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[p] = true
	w.res.Depth[p] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", p, err)
		}
	}

	for _, nbr := range w.neighbors(p) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.SkippedNeighbors++
			continue
		}

		if !w.res.Visited[nbr] {
			w.res.Parent[nbr] = p
			if err := w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(p); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", p, err)
		}
	}

	w.res.Order = append(w.res.Order, p)

	return nil
}
