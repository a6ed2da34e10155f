package graphiso

import (
	"errors"

	"github.com/katalvlaran/dcoset/core"
	"github.com/katalvlaran/dcoset/coset"
	"github.com/katalvlaran/dcoset/partstack"
)

// ErrNilGraph is returned when Isomorphic is called with a nil graph.
var ErrNilGraph = errors.New("graphiso: graph is nil")

// graphStructure is the Structure handle threaded through the search:
// an adjacency matrix over points 0..n-1 plus each point's precomputed
// degree, the refinement invariant.
type graphStructure struct {
	adj    [][]bool
	degree []int
}

// buildStructure indexes g's vertices by pts (must be g.Vertices(), so
// point i is pts[i]) and fills in the adjacency matrix and degree table.
func buildStructure(g *core.Graph, pts []string) (*graphStructure, error) {
	n := len(pts)
	idx := make(map[string]int, n)
	for i, v := range pts {
		idx[v] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	degree := make([]int, n)
	for i, v := range pts {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			adj[i][idx[nb]] = true
		}
		degree[i] = len(nbrs)
	}
	return &graphStructure{adj: adj, degree: degree}, nil
}

// refineGraph splits the active partition by degree at the root (k < 0)
// and by adjacency to the just-individualized point k at every deeper
// level, returning the individualized point's degree as the
// S_n-equivariant invariant.
func refineGraph(ps *partstack.Stack, s coset.Structure, cells []int, k int) int {
	st := s.(*graphStructure)
	if k < 0 {
		ps.RefineByKey(func(v int) int { return st.degree[v] })
		return 0
	}
	ps.RefineByKey(func(v int) int {
		if st.adj[k][v] {
			return 1
		}
		return 0
	})
	return st.degree[k]
}

// compareGraph reports whether gamma1 carries s1's adjacency onto s2's:
// equality means a.adj[u][v] == b.adj[gamma1[u]][gamma1[v]] for every
// pair u,v, total-ordered by the first mismatching pair. gamma2 is
// unused because the engine only ever calls CompareFunc with the
// identity as its second argument.
func compareGraph(gamma1, _ []int, s1, s2 coset.Structure, n int) int {
	a := s1.(*graphStructure)
	b := s2.(*graphStructure)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			av, bv := a.adj[u][v], b.adj[gamma1[u]][gamma1[v]]
			if av != bv {
				if bv {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

// Isomorphic reports whether g1 and g2 are isomorphic, returning a
// vertex-ID-to-vertex-ID mapping witnessing the isomorphism when one
// exists. Cheap invariants (degree sequence, component sizes, cycle
// presence) are checked first; the search only runs once they all agree.
func Isomorphic(g1, g2 *core.Graph) (bool, map[string]string, error) {
	if g1 == nil || g2 == nil {
		return false, nil, ErrNilGraph
	}

	agree, err := cheapInvariantsAgree(g1, g2)
	if err != nil {
		return false, nil, err
	}
	if !agree {
		return false, nil, nil
	}

	n := g1.VertexCount()
	if n == 0 {
		return false, nil, nil
	}

	pts1 := g1.Vertices()
	pts2 := g2.Vertices()
	s1, err := buildStructure(g1, pts1)
	if err != nil {
		return false, nil, err
	}
	s2, err := buildStructure(g2, pts2)
	if err != nil {
		return false, nil, err
	}

	isom := make([]int, n)
	ok, err := coset.DoubleCoset(s1, s2, partstack.New(n, true), nil, n,
		refineGraph, compareGraph, nil, nil, isom)
	if err != nil || !ok {
		return false, nil, err
	}

	mapping := make(map[string]string, n)
	for i, v := range pts1 {
		mapping[v] = pts2[isom[i]]
	}
	return true, mapping, nil
}
