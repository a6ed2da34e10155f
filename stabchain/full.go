package stabchain

import "github.com/katalvlaran/dcoset/orbitpart"

// fullGroup is the sentinel "full symmetric group" collaborator, used as
// the default when no input group is supplied. Membership is
// definitional: any length-n
// permutation belongs. Its generator sets are adjacent transpositions of
// the still-unfixed points at each level, enough to make every unfixed
// point a single orbit for SplitPointAndRefineByOrbits.
type fullGroup struct {
	n       int
	base    []int
	scratch *orbitpart.Partition
}

// Full returns the full symmetric group on 0..n-1.
func Full(n int) Chain {
	return &fullGroup{n: n, scratch: orbitpart.New(n)}
}

func (f *fullGroup) Contains(perm []int) bool { return isPermutation(perm, f.n) }

func (f *fullGroup) Identity(buf []int) { copy(buf, identityPerm(f.n)) }

func (f *fullGroup) CopyInto(dst Chain) {
	d := dst.(*fullGroup)
	d.n = f.n
	d.base = append(d.base[:0], f.base...)
}

func (f *fullGroup) InsertBasePoint(dst Chain, level, b int) error {
	d, ok := dst.(*fullGroup)
	if !ok {
		return ErrChainTypeMismatch
	}
	d.n = f.n
	upto := min(level, len(f.base))
	d.base = append(append([]int(nil), f.base[:upto]...), b)
	return nil
}

func (f *fullGroup) Generators(level int) [][]int {
	if level < len(f.base) {
		return nil
	}
	fixed := make(map[int]bool, level)
	for _, b := range f.base {
		fixed[b] = true
	}
	free := make([]int, 0, f.n)
	for p := 0; p < f.n; p++ {
		if !fixed[p] {
			free = append(free, p)
		}
	}
	if len(free) < 2 {
		return nil
	}
	gens := make([][]int, 0, len(free)-1)
	for i := 0; i < len(free)-1; i++ {
		g := identityPerm(f.n)
		g[free[i]], g[free[i+1]] = free[i+1], free[i]
		gens = append(gens, g)
	}
	return gens
}

func (f *fullGroup) NumGenerators(level int) int { return len(f.Generators(level)) }

func (f *fullGroup) Parent(level, p int) int { return p }

func (f *fullGroup) BaseSize() int { return len(f.base) }

func (f *fullGroup) OrbitScratch() *orbitpart.Partition { return f.scratch }

func (f *fullGroup) Blank(n int) Chain { return Full(n) }
