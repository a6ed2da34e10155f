// Package bfs provides breadth-first search over this module's point-set
// domain, returning unweighted shortest-path distances, parent links, and
// visit order.
//
// BFS explores points in increasing distance from a start point, with
// optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// NeighborFunc returns the points adjacent to p. Implementations should
// return them in a stable order so BFS's visit sequence is reproducible.
type NeighborFunc func(p int) []int

// queueItem pairs a point with its BFS depth and its parent's point.
type queueItem struct {
	p      int
	depth  int
	parent int
	hasPar bool
}

// walker encapsulates mutable BFS state.
type walker struct {
	n         int
	neighbors NeighborFunc
	opts      BFSOptions
	ctx       context.Context
	queue     []queueItem
	visited   []bool
	res       *BFSResult
}

// BFS runs breadth-first search over n points 0..n-1, starting from start
// and following neighbors for adjacency, applying any number of functional
// Options. Returns ErrNeighborsNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(n int, neighbors NeighborFunc, start int, opts ...Option) (*BFSResult, error) {
	if neighbors == nil {
		return nil, ErrNeighborsNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := &walker{
		n:         n,
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		queue:     make([]queueItem, 0, n),
		visited:   make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0, 0, false)

	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(p, d, parent int, hasParent bool) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if hasParent {
		w.res.Parent[p] = parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d, parent: parent, hasPar: hasParent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// visit records the point in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, nbr := range w.neighbors(item.p) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.p, true)
		}
	}
	return nil
}
