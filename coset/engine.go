package coset

import (
	"github.com/katalvlaran/dcoset/automorphism"
	"github.com/katalvlaran/dcoset/bitset"
	"github.com/katalvlaran/dcoset/orbitpart"
	"github.com/katalvlaran/dcoset/partstack"
	"github.com/katalvlaran/dcoset/refine"
	"github.com/katalvlaran/dcoset/stabchain"
)

// Structure is the opaque object handle threaded through to callbacks.
type Structure = refine.Structure

// RefineFunc is the client refinement callback.
type RefineFunc = refine.RefineFunc

// CompareFunc is the client total order over discrete leaves.
type CompareFunc = refine.CompareFunc

// EquivalentChildrenFunc is the all_children_are_equivalent hint.
type EquivalentChildrenFunc = refine.EquivalentChildrenFunc

// Engine holds the search state for one DoubleCoset call.
type Engine struct {
	n    int
	s1   Structure
	s2   Structure
	fn   RefineFunc
	cmp  CompareFunc
	kids EquivalentChildrenFunc

	group      stabchain.Chain // nil-safe: stabchain.Full(n) when caller passes nil
	fullGroup  bool            // true when group is the sentinel full symmetric group
	leftPS     *partstack.Stack
	currentPS  *partstack.Stack
	firstPS    *partstack.Stack
	haveFirst  bool
	indicators []int

	pruner           *automorphism.Pruner
	orbitsOfSubgroup *orbitpart.Partition
	fixedSoFar       *bitset.Set

	ws     *Workspace
	ownsWS bool
}

// DoubleCoset is the search engine's entry point.
//
// It reports whether some γ in inputGroup (or the full symmetric group,
// if inputGroup is nil) carries s1 to s2 under compare's equality,
// writing γ into isomOut when non-nil and a match is found. The only
// error is ErrOutOfMemory; every other outcome is carried in the bool.
func DoubleCoset(
	s1, s2 Structure,
	partition1 *partstack.Stack,
	ordering2 []int,
	n int,
	refineFn RefineFunc,
	compareFn CompareFunc,
	allChildrenAreEquivalent EquivalentChildrenFunc,
	inputGroup stabchain.Chain,
	isomOut []int,
	opts ...Option,
) (bool, error) {
	if n == 0 {
		return false, nil
	}
	o := gatherOptions(opts...)

	e := &Engine{
		n:    n,
		s1:   s1,
		s2:   s2,
		fn:   refineFn,
		cmp:  compareFn,
		kids: allChildrenAreEquivalent,
	}

	if o.workspace != nil {
		o.workspace.reset(n)
		e.ws = o.workspace
		e.ownsWS = false
	} else {
		e.ws = NewWorkspace(n)
		e.ownsWS = true
	}

	e.leftPS = e.ws.LeftStack
	e.currentPS = e.ws.CurrentStack
	e.firstPS = partstack.New(n, true)
	e.indicators = make([]int, n+1)
	e.pruner = e.ws.Pruner
	e.orbitsOfSubgroup = e.ws.Orbits
	e.fixedSoFar = &e.ws.Bits[n]

	if inputGroup == nil {
		e.group = stabchain.Full(n)
		e.fullGroup = true
	} else {
		e.group = inputGroup.Blank(n)
		inputGroup.CopyInto(e.group)
	}

	e.leftPS.CopyFrom(partition1)

	if ordering2 != nil {
		e.currentPS.SetOrdering(ordering2)
	}
	e.currentPS.CopyCellStructure(e.leftPS)

	ok, err := e.run()
	if ok && isomOut != nil {
		e.leftPS.GetPermFrom(e.currentPS, isomOut)
	}
	if e.ownsWS {
		// Go has no explicit free; dropping the only reference is this
		// engine's way of releasing its workspace on every exit path,
		// including the OOM path below.
		e.ws = nil
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}

// run executes the four search phases: root refinement, left-side
// individualization, backtracking search, and leaf handling.
func (e *Engine) run() (bool, error) {
	if !e.setup() {
		return false, nil
	}
	if err := e.descendLeft(); err != nil {
		return false, err
	}
	return e.search(0), nil
}

// setup is Phase 0: refine both sides once at depth 0 and reject
// immediately on invariant or cell-structure mismatch.
func (e *Engine) setup() bool {
	cells := e.cellsAtDepth(e.leftPS)
	invLeft := e.driver().RefineAtRoot(e.leftPS, e.s1, cells)
	invCur := e.driver().RefineAtRoot(e.currentPS, e.s2, cells)
	if invLeft != invCur {
		return false
	}
	return e.leftPS.Equivalent(e.currentPS)
}

// descendLeft is Phase 1: fully individualize leftPS, growing the
// search base in lockstep and recording each depth's refinement
// invariant.
func (e *Engine) descendLeft() error {
	for !e.leftPS.IsDiscrete() {
		oldDepth := e.leftPS.Depth()
		out := &e.ws.Bits[oldDepth]
		k := e.leftPS.FirstSmallest(out)
		if k < 0 {
			break
		}
		if !e.fullGroup {
			dst := e.group.Blank(e.n)
			if err := e.group.InsertBasePoint(dst, oldDepth, k); err != nil {
				return ErrOutOfMemory
			}
			e.group = dst
		}
		cells := e.cellMembers(out)
		inv := e.driver().SplitAndRefine(e.leftPS, e.s1, k, cells, e.permRow(e.leftPS))
		e.leftPS.MoveAllMinsToFront()
		e.indicators[oldDepth] = inv
	}
	return nil
}

// search is the backtracking walk over currentPS. It advances
// currentPS one individualization per recursive call, keeping it in
// lockstep depth-for-depth with leftPS, and returns whether a valid
// witness permutation was found.
//
// This recursion favors a structurally simple depth-for-depth walk over
// an iterative first_meets_current/primary-orbit bookkeeping scheme; it
// preserves every load-bearing invariant (indicator matching, mins-first,
// group membership, automorphism soundness) while dropping the specific
// schedule by which equivalent siblings are skipped. See DESIGN.md.
func (e *Engine) search(depth int) bool {
	if e.currentPS.IsDiscrete() {
		return e.handleLeaf()
	}

	out := &e.ws.Bits[depth]
	k0 := e.currentPS.FirstSmallest(out)
	if k0 < 0 {
		return false
	}

	candidates := out
	if !e.fullGroup {
		candidates = e.filterReachable(out, depth)
	}
	if e.pruner.Len() > 0 {
		reduced := candidates.Clone()
		e.pruner.Reduce(reduced, e.fixedSoFar)
		if !reduced.IsEmpty() {
			candidates = reduced
		}
	}

	found := false
	skipRest := false
	candidates.Each(func(p int) {
		if found || skipRest {
			return
		}
		cells := e.cellMembers(out)
		inv := e.driver().SplitAndRefine(e.currentPS, e.s2, p, cells, e.permRow(e.currentPS))
		e.currentPS.MoveAllMinsToFront()

		// leftPS was descended to its leaf once; compare against its
		// cell structure at the depth currentPS has just reached.
		leftAtDepth := e.leftPS.Clone()
		leftAtDepth.Pop(e.currentPS.Depth())
		ok := inv == e.indicators[depth] && leftAtDepth.Equivalent(e.currentPS)
		if ok {
			// Once the client reports the remaining children of this node
			// are all equivalent, one representative speaks for the rest
			// of the cell — under-reporting only costs time.
			if e.kids != nil && e.kids(e.currentPS, e.s2) {
				skipRest = true
			}
			e.fixedSoFar.Set(p)
			if e.search(depth + 1) {
				found = true
			}
			e.fixedSoFar.Unset(p)
		}
		if !found {
			e.currentPS.Pop(depth)
		}
	})
	return found
}

// handleLeaf is Phase 3.III: both stacks are discrete.
func (e *Engine) handleLeaf() bool {
	n := e.n
	gamma := make([]int, n)
	e.leftPS.GetPermFrom(e.currentPS, gamma)
	id := identity(n)

	if e.cmp(gamma, id, e.s1, e.s2, n) == 0 && e.groupContains(gamma) {
		e.recordFirstIfNeeded()
		return true
	}

	if e.haveFirst {
		e.recordAutomorphismIfMatches(id)
	}
	return false
}

func (e *Engine) recordFirstIfNeeded() {
	if !e.haveFirst {
		e.firstPS.CopyFrom(e.currentPS)
		e.haveFirst = true
	}
}

// recordAutomorphismIfMatches tests whether the just-found discrete
// leaf is an automorphism of S2 relative to the first leaf found, and
// if so feeds the pruner and orbit partition.
func (e *Engine) recordAutomorphismIfMatches(id []int) {
	pi := make([]int, e.n)
	e.firstPS.GetPermFrom(e.currentPS, pi)
	if e.cmp(pi, id, e.s2, e.s2, e.n) != 0 {
		return
	}
	if !e.groupContains(pi) {
		return
	}
	e.pruner.Record(pi)
	e.orbitsOfSubgroup.MergeByPermutation(pi)
}

func (e *Engine) groupContains(perm []int) bool {
	if e.fullGroup {
		return true
	}
	return e.group.Contains(perm)
}

// filterReachable restricts candidates to points reachable in the
// group's Schreier tree at this depth.
func (e *Engine) filterReachable(candidates *bitset.Set, depth int) *bitset.Set {
	out := bitset.New(e.n)
	candidates.Each(func(p int) {
		if e.group.Parent(depth, p) != -1 {
			out.Set(p)
		}
	})
	if out.IsEmpty() {
		return candidates
	}
	return out
}

func (e *Engine) driver() *refine.Driver {
	if e.fullGroup {
		return &refine.Driver{Refine: e.fn}
	}
	return &refine.Driver{Refine: e.fn, Group: e.group}
}

// permRow returns the current entries ordering as the stand-in for a
// permutation-stack row: ps.Entries() already IS the cumulative
// permutation built up by every individualization so far, which is
// exactly what that row composes group generators through before
// folding their orbits into the partition.
func (e *Engine) permRow(ps *partstack.Stack) []int {
	return ps.Entries()
}

// cellsAtDepth flattens every cell's point values at depth into one
// slice, the root-refinement counterpart to cellMembers (which does the
// same for a single cell's bitset membership).
func (e *Engine) cellsAtDepth(ps *partstack.Stack) []int {
	entries := ps.Entries()
	out := make([]int, 0, len(entries))
	out = append(out, entries...)
	return out
}

func (e *Engine) cellMembers(out *bitset.Set) []int {
	members := make([]int, 0, out.Count())
	out.Each(func(i int) { members = append(members, i) })
	return members
}

func identity(n int) []int {
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}
	return id
}
