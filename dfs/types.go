// Package dfs defines types and options for depth-first search traversal
// over this module's point-set domain, including cancellation, pre-/post-
// order hooks, depth limiting, neighbor filtering, full-graph (forest)
// traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// PointState represents the DFS visitation state of a point.
const (
	White = iota // White: the point has not been visited yet.
	Gray         // Gray: the point is in the recursion stack (visiting).
	Black        // Black: the point and all its descendants have been fully explored.
)

var (
	// ErrNeighborsNil is returned when a nil neighbor closure is passed to DFS or DetectCycles.
	ErrNeighborsNil = errors.New("dfs: neighbors function is nil")

	// ErrStartOutOfRange indicates that the specified start point is not in [0,n).
	ErrStartOutOfRange = errors.New("dfs: start point out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(n, neighbors, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a point (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(p int) error

	// OnExit, if non-nil, is invoked after all descendants of a point
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(p int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start point. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor point before recurse.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(p int) bool

	// FullTraversal, if true, runs DFS from every unvisited point in 0..n-1,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbor points were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a point is first discovered.
func WithOnVisit(fn func(p int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a point's descendants have been fully explored.
func WithOnExit(fn func(p int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start point is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor points.
// If fn(p) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(p int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited point, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports post-order, discovery depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records points in the sequence they finished (post-order).
	Order []int

	// Depth maps each point to its distance (#edges) from the start.
	Depth map[int]int

	// Parent maps each point to the point from which it was first discovered.
	// The start point will not appear in this map for each DFS tree.
	Parent map[int]int

	// Visited flags which points were reached during the traversal.
	Visited map[int]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
