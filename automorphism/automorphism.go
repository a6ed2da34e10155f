package automorphism

import "github.com/katalvlaran/dcoset/bitset"

// Capacity is the pruner ring's fixed size.
const Capacity = 100

// entry is one recorded generator's pruning data.
type entry struct {
	fp  *bitset.Set // fp[i] = 1 iff the generator fixes i
	mcr *bitset.Set // mcr[i] = 1 iff i is the minimum of its cycle
}

// Pruner is the bounded ring of discovered-automorphism fingerprints.
// The zero value is not usable; construct with New.
type Pruner struct {
	n       int
	entries []entry
	full    bool
}

// New allocates a Pruner over the point set 0..n-1.
func New(n int) *Pruner {
	return &Pruner{n: n}
}

// Reset empties the ring without releasing its backing storage.
func (p *Pruner) Reset() {
	p.entries = p.entries[:0]
	p.full = false
}

// Record computes perm's fp/mcr bitsets by an O(n) cycle-walk and
// pushes them into the ring. Once the ring reaches Capacity, further
// automorphisms stop being recorded but those already retained keep
// being used — soundness holds because every retained entry still
// describes a real symmetry.
func (p *Pruner) Record(perm []int) {
	fp := bitset.New(p.n)
	mcr := bitset.New(p.n)
	visited := make([]bool, p.n)
	for i := 0; i < p.n; i++ {
		if visited[i] {
			continue
		}
		if perm[i] == i {
			fp.Set(i)
			mcr.Set(i)
			visited[i] = true
			continue
		}
		min := i
		j := i
		var cycle []int
		for {
			visited[j] = true
			cycle = append(cycle, j)
			if j < min {
				min = j
			}
			j = perm[j]
			if j == i {
				break
			}
		}
		for _, v := range cycle {
			if v == min {
				mcr.Set(v)
			}
		}
	}

	e := entry{fp: fp, mcr: mcr}
	if len(p.entries) < Capacity {
		p.entries = append(p.entries, e)
		return
	}
	if p.full {
		return
	}
	p.full = true
}

// Reduce intersects candidates with the mcr bitset of every recorded
// generator whose fixed-point set covers fixedSoFar: if a
// generator fixes every point individualized so far on this branch, its
// action stays within the branch, so restricting to minimal cycle
// representatives loses no coset.
func (p *Pruner) Reduce(candidates *bitset.Set, fixedSoFar *bitset.Set) {
	for _, e := range p.entries {
		if e.fp.ContainsAll(fixedSoFar) {
			candidates.Intersect(e.mcr)
		}
	}
}

// Len reports the number of currently-recorded generators.
func (p *Pruner) Len() int { return len(p.entries) }
