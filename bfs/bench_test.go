package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dcoset/bfs"
)

// chainNeighbors builds a NeighborFunc over a linear chain 0-1-...-N.
func chainNeighbors(n int) bfs.NeighborFunc {
	return func(p int) []int {
		var out []int
		if p > 0 {
			out = append(out, p-1)
		}
		if p < n-1 {
			out = append(out, p+1)
		}
		return out
	}
}

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 points.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	n := N + 1
	neighbors := chainNeighbors(n)

	b.ReportAllocs()
	b.SetBytes(int64(n + N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(n, neighbors, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 points).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 points, 1022 edges
	nodeCount := (1 << depth) - 1
	edgeCount := nodeCount - 1

	neighbors := func(p int) []int {
		var out []int
		if p > 0 {
			out = append(out, (p-1)/2)
		}
		if l := 2*p + 1; l < nodeCount {
			out = append(out, l)
		}
		if r := 2*p + 2; r < nodeCount {
			out = append(out, r)
		}
		return out
	}

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + edgeCount))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(nodeCount, neighbors, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² points, ≈2*M*(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	n := M * M
	edgeCount := 2 * M * (M - 1)

	idx := func(i, j int) int { return i*M + j }
	neighbors := func(p int) []int {
		i, j := p/M, p%M
		var out []int
		if i > 0 {
			out = append(out, idx(i-1, j))
		}
		if i+1 < M {
			out = append(out, idx(i+1, j))
		}
		if j > 0 {
			out = append(out, idx(i, j-1))
		}
		if j+1 < M {
			out = append(out, idx(i, j+1))
		}
		return out
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + edgeCount))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(n, neighbors, idx(0, 0))
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	adj := make([][]int, V)
	for k := 0; k < E; k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	neighbors := func(p int) []int { return adj[p] }

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(V, neighbors, 0)
	}
}

// BenchmarkBFS_HookOverhead compares BFS with and without an expensive OnVisit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	const N = 1000
	n := N + 1
	neighbors := chainNeighbors(n)

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(n + N))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(n, neighbors, 0)
		}
	})

	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.SetBytes(int64(n + N))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(n, neighbors, 0, bfs.WithOnVisit(heavy))
		}
	})
}
