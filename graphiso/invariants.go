package graphiso

import (
	"sort"

	"github.com/katalvlaran/dcoset/bfs"
	"github.com/katalvlaran/dcoset/core"
	"github.com/katalvlaran/dcoset/dfs"
)

// pointIndex maps g's vertices to points 0..n-1 (index i <-> g.Vertices()[i])
// and exposes a NeighborFunc over that indexing, shared by every invariant
// below and by buildStructure.
type pointIndex struct {
	pts       []string
	idx       map[string]int
	neighbors func(p int) []int
}

func newPointIndex(g *core.Graph) (*pointIndex, error) {
	pts := g.Vertices()
	idx := make(map[string]int, len(pts))
	for i, v := range pts {
		idx[v] = i
	}
	adj := make([][]int, len(pts))
	for i, v := range pts {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		row := make([]int, len(nbrs))
		for j, nb := range nbrs {
			row[j] = idx[nb]
		}
		adj[i] = row
	}
	return &pointIndex{
		pts: pts,
		idx: idx,
		neighbors: func(p int) []int {
			return adj[p]
		},
	}, nil
}

// degreeSequence returns every vertex's total degree (in+out+undirected),
// sorted descending. Isomorphic graphs always share a degree sequence, so
// a mismatch is a cheap, sound rejection before any search runs.
func degreeSequence(g *core.Graph) ([]int, error) {
	verts := g.Vertices()
	seq := make([]int, 0, len(verts))
	for _, id := range verts {
		in, out, undirected, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		seq = append(seq, in+out+undirected)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))
	return seq, nil
}

// componentSizes returns the sorted sizes of g's connected components,
// found via repeated BFS from each still-unvisited point over the same
// point-indexed adjacency buildStructure uses.
func componentSizes(pi *pointIndex) ([]int, error) {
	n := len(pi.pts)
	visited := make([]bool, n)
	var sizes []int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		res, err := bfs.BFS(n, pi.neighbors, start)
		if err != nil {
			return nil, err
		}
		for p := range res.Depth {
			visited[p] = true
		}
		sizes = append(sizes, len(res.Depth))
	}
	sort.Ints(sizes)
	return sizes, nil
}

// hasCycle reports whether the graph described by pi contains any cycle,
// an isomorphism invariant independent of labeling.
func hasCycle(pi *pointIndex) (bool, error) {
	found, _, err := dfs.DetectCycles(len(pi.pts), pi.neighbors)
	return found, err
}

// cheapInvariantsAgree runs the fast pre-checks and reports whether g1
// and g2 could possibly be isomorphic. false means "definitely not";
// true means "no cheap contradiction found", not "isomorphic".
func cheapInvariantsAgree(g1, g2 *core.Graph) (bool, error) {
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return false, nil
	}

	d1, err := degreeSequence(g1)
	if err != nil {
		return false, err
	}
	d2, err := degreeSequence(g2)
	if err != nil {
		return false, err
	}
	if !intSliceEqual(d1, d2) {
		return false, nil
	}

	pi1, err := newPointIndex(g1)
	if err != nil {
		return false, err
	}
	pi2, err := newPointIndex(g2)
	if err != nil {
		return false, err
	}

	c1, err := componentSizes(pi1)
	if err != nil {
		return false, err
	}
	c2, err := componentSizes(pi2)
	if err != nil {
		return false, err
	}
	if !intSliceEqual(c1, c2) {
		return false, nil
	}

	cyc1, err := hasCycle(pi1)
	if err != nil {
		return false, err
	}
	cyc2, err := hasCycle(pi2)
	if err != nil {
		return false, err
	}
	if cyc1 != cyc2 {
		return false, nil
	}

	return true, nil
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
