package partstack

import (
	"math"
	"sort"

	"github.com/katalvlaran/dcoset/bitset"
)

// unsplit marks a position that has never been a cell boundary. It must
// compare greater than any depth the engine ever reaches (bounded by n).
const unsplit = math.MaxInt

// Structure is the opaque object handle passed through to client
// callbacks. The engine never inspects it.
type Structure = any

// RefineFunc is the client-supplied refinement callback:
// refine_and_return_invariant(PS, S, cells, k) -> int, required to be
// invariant under the diagonal S_n action.
type RefineFunc func(ps *Stack, s Structure, cells []int, k int) int

// Stack is an ordered-partition stack: a sequence of successively finer
// partitions of 0..n-1, one per search depth, supporting cheap push
// (individualize a point) and pop (undo back to an earlier depth).
type Stack struct {
	n       int
	entries []int // position -> value, mins-first within each cell
	where   []int // value -> position, inverse of entries
	levels  []int // per-position boundary marker, see package doc
	depth   int
}

// New allocates a Stack over 0..n-1. If unit, depth 0 is initialized to
// the trivial single-cell partition {0..n-1}.
func New(n int, unit bool) *Stack {
	s := &Stack{
		n:       n,
		entries: make([]int, n),
		where:   make([]int, n),
		levels:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.entries[i] = i
		s.where[i] = i
	}
	if unit {
		for i := 0; i < n-1; i++ {
			s.levels[i] = unsplit
		}
		if n > 0 {
			s.levels[n-1] = -1
		}
	}
	return s
}

// N returns the universe size.
func (s *Stack) N() int { return s.n }

// Depth returns the active depth.
func (s *Stack) Depth() int { return s.depth }

// Entries returns the position->value array of the active partition.
// Callers must not mutate the returned slice.
func (s *Stack) Entries() []int { return s.entries }

// isBoundary reports whether position i ends a cell at depth d.
func (s *Stack) isBoundary(i, d int) bool { return s.levels[i] < d }

// Cells returns the [begin,end] (inclusive) position ranges of every cell
// at the active depth, in entries order.
func (s *Stack) Cells() [][2]int {
	cells := make([][2]int, 0, 8)
	begin := 0
	for i := 0; i < s.n; i++ {
		if s.isBoundary(i, s.depth) {
			cells = append(cells, [2]int{begin, i})
			begin = i + 1
		}
	}
	return cells
}

// IsDiscrete reports whether every cell at the active depth is a
// singleton.
func (s *Stack) IsDiscrete() bool {
	for i := 0; i < s.n; i++ {
		if !s.isBoundary(i, s.depth) {
			return false
		}
	}
	return true
}

func (s *Stack) swap(i, j int) {
	if i == j {
		return
	}
	vi, vj := s.entries[i], s.entries[j]
	s.entries[i], s.entries[j] = vj, vi
	s.where[vi], s.where[vj] = j, i
}

// FirstSmallest locates the earliest non-singleton cell at the active
// depth, writes its membership into out, and returns the minimum element
// of that cell (the splitting point). Returns -1 if the partition is
// already discrete.
func (s *Stack) FirstSmallest(out *bitset.Set) int {
	begin := 0
	for i := 0; i < s.n; i++ {
		if s.isBoundary(i, s.depth) {
			if i > begin {
				out.Clear()
				for pos := begin; pos <= i; pos++ {
					out.Set(s.entries[pos])
				}
				return s.entries[begin]
			}
			begin = i + 1
		}
	}
	return -1
}

// MoveAllMinsToFront re-establishes the mins-first invariant: within every
// cell of the active partition, the minimum element is swapped to the
// cell's first position.
func (s *Stack) MoveAllMinsToFront() {
	begin := 0
	for i := 0; i < s.n; i++ {
		if s.isBoundary(i, s.depth) {
			minPos := begin
			for pos := begin + 1; pos <= i; pos++ {
				if s.entries[pos] < s.entries[minPos] {
					minPos = pos
				}
			}
			s.swap(begin, minPos)
			begin = i + 1
		}
	}
}

// cellContaining returns the [begin,end] bounds, at depth d, of the cell
// holding position pos.
func (s *Stack) cellContaining(pos, d int) (int, int) {
	begin := pos
	for begin > 0 && !s.isBoundary(begin-1, d) {
		begin--
	}
	end := pos
	for !s.isBoundary(end, d) {
		end++
	}
	return begin, end
}

// individualize pushes a new depth and isolates value p into a singleton
// cell at the front of its old cell. Returns the [begin,end] bounds of
// the (now-shrunk) remainder, or (-1,-1) if p was already a singleton.
func (s *Stack) individualize(p int) (int, int) {
	oldDepth := s.depth
	s.depth++
	pos := s.where[p]
	begin, end := s.cellContaining(pos, s.depth)
	s.swap(begin, pos)
	if end == begin {
		return -1, -1
	}
	s.levels[begin] = oldDepth
	return begin + 1, end
}

// RefineByKey splits every cell of the active partition according to
// key(value), stably ordering within each resulting bucket, and reports
// whether any cell actually split. New boundaries are tagged so they
// appear only at the active depth, matching the boundaries individualize
// creates for the same split_point_and_refine call: refinement never
// increases depth on its own, only individualization does.
//
// This is the generic splitting primitive concrete refinement functions
// build on: client RefineFuncs call it once per classifying key they
// want to refine by.
func (s *Stack) RefineByKey(key func(value int) int) bool {
	changed := false
	boundaryLevel := s.depth - 1
	begin := 0
	for i := 0; i < s.n; i++ {
		if s.isBoundary(i, s.depth) {
			if i > begin && s.splitRange(begin, i, key, boundaryLevel) {
				changed = true
			}
			begin = i + 1
		}
	}
	return changed
}

func (s *Stack) splitRange(begin, end int, key func(int) int, boundaryLevel int) bool {
	type kv struct{ value, key int }
	items := make([]kv, 0, end-begin+1)
	for pos := begin; pos <= end; pos++ {
		v := s.entries[pos]
		items = append(items, kv{v, key(v)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })
	for idx, it := range items {
		s.entries[begin+idx] = it.value
		s.where[it.value] = begin + idx
	}
	changed := false
	for idx := 0; idx < len(items)-1; idx++ {
		if items[idx].key != items[idx+1].key {
			s.levels[begin+idx] = boundaryLevel
			changed = true
		}
	}
	return changed
}

// SplitPointAndRefine pushes a new depth, isolates p into a singleton
// cell at the front of its old cell, invokes the client refinement, and
// re-establishes the mins-first invariant. Returns the client's
// invariant.
func (s *Stack) SplitPointAndRefine(p int, structure Structure, refine RefineFunc, cells []int) int {
	s.individualize(p)
	invariant := 0
	if refine != nil {
		invariant = refine(s, structure, cells, p)
	}
	s.MoveAllMinsToFront()
	return invariant
}

// OrbitSource supplies, for the current level, the generators whose
// orbits should further split every cell after the client refinement.
type OrbitSource interface {
	Generators(level int) [][]int
}

// SplitPointAndRefineByOrbits is SplitPointAndRefine plus a further
// refinement of every cell by the orbits of g's generators at the
// current depth, composed through permStack. perm is the cumulative
// permutation for this depth's row of permStack (row-major, n entries);
// pass nil to skip composition and use the raw generators directly.
func (s *Stack) SplitPointAndRefineByOrbits(p int, structure Structure, refine RefineFunc, cells []int, g OrbitSource, perm []int) int {
	invariant := s.SplitPointAndRefine(p, structure, refine, cells)
	if g == nil {
		return invariant
	}
	gens := g.Generators(s.depth)
	if len(gens) == 0 {
		return invariant
	}
	orbits := newScratchUnionFind(s.n)
	for _, gen := range gens {
		composed := gen
		if perm != nil {
			composed = compose(perm, gen)
		}
		orbits.mergeByPermutation(composed)
	}
	s.RefineByKey(orbits.find)
	s.MoveAllMinsToFront()
	return invariant
}

// compose returns perm ∘ gen, i.e. result[i] = perm[gen[i]].
func compose(perm, gen []int) []int {
	out := make([]int, len(gen))
	for i, g := range gen {
		out[i] = perm[g]
	}
	return out
}

// scratchUnionFind is a tiny local union-find used only to fold several
// generators' orbits together before calling RefineByKey; it intentionally
// does not depend on package orbitpart to avoid a needless import for such
// a small, throwaway computation.
type scratchUnionFind struct{ parent []int }

func newScratchUnionFind(n int) *scratchUnionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &scratchUnionFind{parent: p}
}

func (u *scratchUnionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *scratchUnionFind) mergeByPermutation(perm []int) {
	for i, pi := range perm {
		ri, rpi := u.find(i), u.find(pi)
		if ri != rpi {
			u.parent[ri] = rpi
		}
	}
}

// Pop backtracks the active depth to toDepth, forgetting every boundary
// created at depths in [toDepth, current) so a sibling branch explored
// later at the same depths starts from a clean slate.
func (s *Stack) Pop(toDepth int) {
	for i := 0; i < s.n; i++ {
		if s.levels[i] >= toDepth && s.levels[i] < s.depth {
			s.levels[i] = unsplit
		}
	}
	s.depth = toDepth
}

// GetPermFrom assumes both stacks are discrete and have the same cells
// (mins-first) and computes out[entries_self[i]] = entries_other[i].
func (s *Stack) GetPermFrom(other *Stack, out []int) {
	for i := 0; i < s.n; i++ {
		out[s.entries[i]] = other.entries[i]
	}
}

// Equivalent reports whether both stacks have identical cell boundaries
// at their active depths.
func (s *Stack) Equivalent(other *Stack) bool {
	if s.n != other.n {
		return false
	}
	for i := 0; i < s.n; i++ {
		if s.isBoundary(i, s.depth) != other.isBoundary(i, other.depth) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of s.
func (s *Stack) Clone() *Stack {
	out := &Stack{
		n:       s.n,
		entries: append([]int(nil), s.entries...),
		where:   append([]int(nil), s.where...),
		levels:  append([]int(nil), s.levels...),
		depth:   s.depth,
	}
	return out
}

// CopyFrom overwrites s in place with other's state. Both must share the
// same universe size.
func (s *Stack) CopyFrom(other *Stack) {
	copy(s.entries, other.entries)
	copy(s.where, other.where)
	copy(s.levels, other.levels)
	s.depth = other.depth
}

// SetOrdering resets depth-0 entries to the given permutation, the
// initial ordering of the second structure. Cell structure (levels) is
// left untouched — callers copy that separately from the reference
// stack.
func (s *Stack) SetOrdering(ordering []int) {
	copy(s.entries, ordering)
	for pos, v := range ordering {
		s.where[v] = pos
	}
}

// Reset restores s to the trivial single-cell partition at depth 0,
// reusing its backing arrays — the cheap path for workspace reuse
// between searches.
func (s *Stack) Reset() {
	for i := 0; i < s.n; i++ {
		s.entries[i] = i
		s.where[i] = i
	}
	for i := 0; i < s.n-1; i++ {
		s.levels[i] = unsplit
	}
	if s.n > 0 {
		s.levels[s.n-1] = -1
	}
	s.depth = 0
}

// CopyCellStructure copies only the levels/depth (cell boundaries) from
// other, leaving entries untouched — used when seeding the current
// stack's cell structure from the left stack's depth-0 partition while
// keeping the current stack's own ordering-derived entries.
func (s *Stack) CopyCellStructure(other *Stack) {
	copy(s.levels, other.levels)
	s.depth = other.depth
}
