package refine

import (
	"github.com/katalvlaran/dcoset/partstack"
	"github.com/katalvlaran/dcoset/stabchain"
)

// Structure is the opaque object handle threaded through to callbacks.
type Structure = partstack.Structure

// RefineFunc is the client-supplied refinement callback, re-exported
// from partstack so callers of this package don't need to import
// partstack just to name the callback type.
type RefineFunc = partstack.RefineFunc

// CompareFunc is the client total order over discrete leaves: a total
// order on the object class such that equality means γ1⁻¹·S1 = γ2⁻¹·S2.
// Inputs are in inverse-permutation form — implementations must avoid
// materializing inverses.
type CompareFunc func(gamma1, gamma2 []int, s1, s2 Structure, n int) int

// EquivalentChildrenFunc is the all_children_are_equivalent hint. It may
// under-report (always false is correct but slower) and must never
// over-report.
type EquivalentChildrenFunc func(ps *partstack.Stack, s Structure) bool

// Driver wraps a client RefineFunc and an optional subgroup whose orbits
// further constrain every refinement. Group == nil selects the
// full-symmetric case: a pure passthrough to Refine.
type Driver struct {
	Refine RefineFunc
	Group  stabchain.Chain
}

// SplitAndRefine individualizes p, invokes the client refinement, and —
// when a subgroup is configured — further refines by the subgroup's
// orbits at the stack's new depth, composed through permStack's current
// row. permStack may be nil, meaning "use the chain's raw generators
// without composing through a cumulative permutation" (used before any
// individualization has built up a nontrivial permStack row).
func (d *Driver) SplitAndRefine(ps *partstack.Stack, s Structure, p int, cells []int, permStack []int) int {
	if d.Group == nil {
		return ps.SplitPointAndRefine(p, s, d.Refine, cells)
	}
	return ps.SplitPointAndRefineByOrbits(p, s, d.Refine, cells, d.Group, permStack)
}

// RefineAtRoot runs the client refinement at the active depth without
// individualizing any point first: refining both sides at the root
// happens before any point has been chosen. In the
// subgroup case, cells are additionally split by Group's orbits at
// level 0 — computed with a throwaway union-find rather than routing
// through partstack.SplitPointAndRefineByOrbits, since that helper
// always individualizes first and root refinement must not.
func (d *Driver) RefineAtRoot(ps *partstack.Stack, s Structure, cells []int) int {
	inv := 0
	if d.Refine != nil {
		inv = d.Refine(ps, s, cells, -1)
	}
	ps.MoveAllMinsToFront()
	if d.Group == nil {
		return inv
	}
	gens := d.Group.Generators(0)
	if len(gens) == 0 {
		return inv
	}
	parent := make([]int, ps.N())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, g := range gens {
		for i, gi := range g {
			ri, rgi := find(i), find(gi)
			if ri != rgi {
				parent[ri] = rgi
			}
		}
	}
	ps.RefineByKey(find)
	ps.MoveAllMinsToFront()
	return inv
}
