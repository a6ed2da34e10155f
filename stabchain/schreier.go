package stabchain

import "github.com/katalvlaran/dcoset/orbitpart"

// schreierLevel is one level of a base-and-strong-generating-set chain:
// the stabilizer of every earlier base point, generated by gens, with its
// orbit of base under gens recorded via a BFS transversal.
type schreierLevel struct {
	base        int
	gens        [][]int
	orbit       []int
	transversal map[int][]int
	parentOf    []int // size n; -1 if unreached, parentOf[base] == base
}

// schreierChain is a minimal reference stabilizer chain: orbit/
// transversal per level, built by BFS over generator application, the
// same enqueue/visited/parent shape as a graph breadth-first walker,
// with vertices replaced by points and edges replaced by generator
// application. It supports exactly what Chain requires and nothing
// more — no base change, no group order, no randomized Schreier-Sims.
type schreierChain struct {
	n       int
	levels  []schreierLevel
	scratch *orbitpart.Partition
}

// NewSchreier builds a reference stabilizer chain for the group
// generated by gens acting on 0..n-1.
func NewSchreier(n int, gens [][]int) Chain {
	c := &schreierChain{n: n, scratch: orbitpart.New(n)}
	c.rebuildWithBase(gens, nil)
	return c
}

func nonIdentityGens(gens [][]int) [][]int {
	out := make([][]int, 0, len(gens))
	for _, g := range gens {
		if !isIdentityPerm(g) {
			out = append(out, g)
		}
	}
	return out
}

// rebuildWithBase constructs the chain's levels from scratch, using
// forcedBase as the first len(forcedBase) base points (in order,
// inserted even if trivial) and auto-selecting the remaining base points
// as "first point moved by a surviving generator" the way a textbook
// BSGS construction does.
func (c *schreierChain) rebuildWithBase(gens [][]int, forcedBase []int) {
	c.levels = nil
	cur := nonIdentityGens(gens)
	fixed := make([]bool, c.n)

	pickBase := func() int {
		for _, g := range cur {
			for p := 0; p < c.n; p++ {
				if !fixed[p] && g[p] != p {
					return p
				}
			}
		}
		return -1
	}

	forcedIdx := 0
	for {
		var base int
		if forcedIdx < len(forcedBase) {
			base = forcedBase[forcedIdx]
			forcedIdx++
		} else {
			cur = nonIdentityGens(cur)
			if len(cur) == 0 {
				break
			}
			base = pickBase()
			if base == -1 {
				break
			}
		}
		fixed[base] = true
		lvl := c.buildLevel(base, cur)
		c.levels = append(c.levels, lvl)
		cur = schreierGenerators(lvl)
	}
}

func (c *schreierChain) buildLevel(base int, gens [][]int) schreierLevel {
	lvl := schreierLevel{
		base:        base,
		gens:        gens,
		transversal: map[int][]int{base: identityPerm(c.n)},
		parentOf:    make([]int, c.n),
		orbit:       []int{base},
	}
	for i := range lvl.parentOf {
		lvl.parentOf[i] = -1
	}
	lvl.parentOf[base] = base

	queue := []int{base}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		u := lvl.transversal[cur]
		for _, g := range gens {
			next := g[cur]
			if _, seen := lvl.transversal[next]; seen {
				continue
			}
			lvl.transversal[next] = composePerm(u, g)
			lvl.parentOf[next] = cur
			lvl.orbit = append(lvl.orbit, next)
			queue = append(queue, next)
		}
	}
	return lvl
}

// schreierGenerators produces a generating set for the stabilizer of
// lvl.base via Schreier's lemma: for every orbit point p (transversal
// rep u_p) and generator g, u_p ∘ g ∘ (u_{g(p)})^-1 fixes base.
func schreierGenerators(lvl schreierLevel) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, p := range lvl.orbit {
		u := lvl.transversal[p]
		for _, g := range lvl.gens {
			img := g[p]
			rep := lvl.transversal[img]
			cand := composePerm(composePerm(u, g), inversePerm(rep))
			if isIdentityPerm(cand) {
				continue
			}
			key := permKey(cand)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, cand)
		}
	}
	return out
}

func (c *schreierChain) Contains(perm []int) bool {
	if !isPermutation(perm, c.n) {
		return false
	}
	g := append([]int(nil), perm...)
	for _, lvl := range c.levels {
		img := g[lvl.base]
		rep, ok := lvl.transversal[img]
		if !ok {
			return false
		}
		g = composePerm(g, inversePerm(rep))
	}
	return isIdentityPerm(g)
}

func (c *schreierChain) Identity(buf []int) { copy(buf, identityPerm(c.n)) }

func (c *schreierChain) CopyInto(dst Chain) {
	d := dst.(*schreierChain)
	d.n = c.n
	d.levels = make([]schreierLevel, len(c.levels))
	for i, lvl := range c.levels {
		cp := schreierLevel{
			base:        lvl.base,
			gens:        lvl.gens,
			orbit:       append([]int(nil), lvl.orbit...),
			transversal: make(map[int][]int, len(lvl.transversal)),
			parentOf:    append([]int(nil), lvl.parentOf...),
		}
		for k, v := range lvl.transversal {
			cp.transversal[k] = v
		}
		d.levels[i] = cp
	}
}

func (c *schreierChain) InsertBasePoint(dst Chain, level, b int) error {
	d, ok := dst.(*schreierChain)
	if !ok {
		return ErrChainTypeMismatch
	}
	if d.scratch == nil {
		d.scratch = orbitpart.New(c.n)
	}
	forced := make([]int, 0, level+1)
	for i := 0; i < level && i < len(c.levels); i++ {
		forced = append(forced, c.levels[i].base)
	}
	forced = append(forced, b)
	var top [][]int
	if len(c.levels) > 0 {
		top = c.levels[0].gens
	}
	d.n = c.n
	d.rebuildWithBase(top, forced)
	return nil
}

func (c *schreierChain) Generators(level int) [][]int {
	if level < 0 || level >= len(c.levels) {
		return nil
	}
	return c.levels[level].gens
}

func (c *schreierChain) NumGenerators(level int) int { return len(c.Generators(level)) }

func (c *schreierChain) Parent(level, p int) int {
	if level < 0 || level >= len(c.levels) {
		return -1
	}
	if p < 0 || p >= c.n {
		return -1
	}
	return c.levels[level].parentOf[p]
}

func (c *schreierChain) BaseSize() int { return len(c.levels) }

func (c *schreierChain) OrbitScratch() *orbitpart.Partition { return c.scratch }

func (c *schreierChain) Blank(n int) Chain { return NewSchreier(n, nil) }
