package coset

import (
	"github.com/katalvlaran/dcoset/automorphism"
	"github.com/katalvlaran/dcoset/bitset"
	"github.com/katalvlaran/dcoset/orbitpart"
	"github.com/katalvlaran/dcoset/partstack"
)

// Workspace bundles every buffer the engine needs for one search,
// allocated once and reusable across calls: every buffer is allocated
// once at entry (or supplied pre-built) and never reallocated mid-search.
// Passing one via WithWorkspace lets a caller amortize allocation across
// repeated DoubleCoset calls on the same n.
type Workspace struct {
	LeftStack, CurrentStack *partstack.Stack
	Orbits                  *orbitpart.Partition
	// Bits holds one scratch bitset per search depth (indices 0..n-1,
	// each search frame's candidate-set scratch space) plus one extra
	// slot at index n for the "points individualized on this branch so
	// far" set the pruner consults. The pruner's own bounded (fp, mcr)
	// pairs live inside automorphism.Pruner instead of this array (see
	// DESIGN.md), so Bits only needs to cover the depth-indexed scratch
	// sets plus the one running-fixed-points set.
	Bits      []bitset.Set
	PermStack []int // n*n, row-major permutation-stack layout
	Scratch   []int // 5n general-purpose scratch
	Pruner    *automorphism.Pruner
}

// NewWorkspace allocates a Workspace sized for n points.
func NewWorkspace(n int) *Workspace {
	w := &Workspace{
		LeftStack:    partstack.New(n, true),
		CurrentStack: partstack.New(n, true),
		Orbits:       orbitpart.New(n),
		Bits:         make([]bitset.Set, n+1),
		PermStack:    make([]int, n*n),
		Scratch:      make([]int, 5*n),
		Pruner:       automorphism.New(n),
	}
	for i := range w.Bits {
		w.Bits[i] = *bitset.New(n)
	}
	return w
}

// reset restores a borrowed Workspace to a clean state for reuse,
// without releasing its backing storage — only its logical contents
// (orbit partition, partition stacks, pruner ring) are cleared.
func (w *Workspace) reset(n int) {
	w.LeftStack.Reset()
	w.CurrentStack.Reset()
	w.Orbits.Clear()
	for i := range w.Bits {
		w.Bits[i].Clear()
	}
	for i := range w.PermStack {
		w.PermStack[i] = 0
	}
	w.Pruner.Reset()
}
