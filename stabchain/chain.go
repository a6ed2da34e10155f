package stabchain

import "github.com/katalvlaran/dcoset/orbitpart"

// Chain is the Stabilizer Chain contract. The engine treats it as an
// opaque collaborator and never constructs one itself from scratch —
// only Full and NewSchreier do, and both are reference/test
// collaborators rather than production machinery.
type Chain interface {
	// Contains reports whether perm is a member of the represented group.
	Contains(perm []int) bool

	// Identity writes the identity permutation into buf.
	Identity(buf []int)

	// CopyInto deep-copies the receiver's state into dst, which must
	// have been built by the same constructor. No new Chain is
	// allocated by this call — callers own dst's lifetime — though an
	// implementation may allocate the slices it copies into dst.
	CopyInto(dst Chain)

	// InsertBasePoint writes into dst a chain identical to the receiver
	// except that its base is extended so that b is the level-th base
	// point. Returns ErrOutOfMemory if the extension cannot be built,
	// ErrChainTypeMismatch if dst is not the same concrete type.
	InsertBasePoint(dst Chain, level, b int) error

	// Generators returns the explicit strong generators of the
	// stabilizer at the given level.
	Generators(level int) [][]int

	// NumGenerators is len(Generators(level)), exposed separately so
	// callers that only need a count don't force an allocation.
	NumGenerators(level int) int

	// Parent returns the Schreier-tree predecessor of p at the given
	// level's orbit, or -1 if p is not reachable — the fast "is p in
	// this orbit" predicate callers need for reachability checks.
	Parent(level, p int) int

	// BaseSize returns the number of base points currently fixed.
	BaseSize() int

	// OrbitScratch returns a pre-allocated orbit partition this chain
	// hands out for the engine's scratch use. Re-entrant callers must
	// not share a Chain across concurrent searches.
	OrbitScratch() *orbitpart.Partition

	// Blank returns a new, empty instance of the same concrete type as
	// the receiver, sized for n points. It carries no state from the
	// receiver — callers populate it via CopyInto or InsertBasePoint.
	// This is what lets the engine keep the "group/old_group" swap
	// working generically: CopyInto/InsertBasePoint require a
	// same-concrete-type destination, and Blank is how the engine gets
	// one without knowing which constructor originally built the chain.
	Blank(n int) Chain
}

func identityPerm(n int) []int {
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}
	return id
}

func composePerm(p, q []int) []int {
	r := make([]int, len(p))
	for i, pi := range p {
		r[i] = q[pi]
	}
	return r
}

func inversePerm(p []int) []int {
	r := make([]int, len(p))
	for i, v := range p {
		r[v] = i
	}
	return r
}

func isIdentityPerm(p []int) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func permKey(p []int) string {
	b := make([]byte, 0, 4*len(p))
	for _, v := range p {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(b)
}
