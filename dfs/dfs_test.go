package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dcoset/dfs"
)

// directedChain returns n points 0..n-1 with forward-only edges i -> i+1.
func directedChain(n int) (int, dfs.NeighborFunc) {
	return n, func(p int) []int {
		if p+1 < n {
			return []int{p + 1}
		}
		return nil
	}
}

// directedBinaryTree returns a complete binary tree of depth d (points
// 0..2^d-2, 0-indexed), parent -> children only.
func directedBinaryTree(depth int) (int, dfs.NeighborFunc) {
	n := (1 << depth) - 1
	return n, func(p int) []int {
		var out []int
		if l := 2*p + 1; l < n {
			out = append(out, l)
		}
		if r := 2*p + 2; r < n {
			out = append(out, r)
		}
		return out
	}
}

func TestDFS_NilNeighbors(t *testing.T) {
	res, err := dfs.DFS(1, nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNeighborsNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	n, neighbors := directedChain(1)
	res, err := dfs.DFS(n, neighbors, 5)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
}

func TestDFS_SinglePoint_NoEdges(t *testing.T) {
	n, neighbors := directedChain(1)
	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.Depth[0])
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent, "start point should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	n, neighbors := 1, func(p int) []int { return []int{0} }
	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)
	// Self-loop should not create additional entries
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited[0])
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	n, neighbors := 3, func(p int) []int {
		if p < 2 {
			return []int{p + 1}
		}
		return nil
	}

	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)
	// Post-order: 2, 1, 0
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.Equal(t, 1, res.Parent[2])
	assert.Equal(t, 2, res.Depth[2])
}

func TestDFS_Disconnected(t *testing.T) {
	n, neighbors := 3, func(p int) []int {
		if p == 0 {
			return []int{1}
		}
		return nil
	}

	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2], "disconnected point should not be visited")
}

func TestDFS_MaxDepth(t *testing.T) {
	n, neighbors := directedChain(3)
	res, err := dfs.DFS(n, neighbors, 0, dfs.WithMaxDepth(0))
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Visited[1])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	n, neighbors := 3, func(p int) []int {
		if p == 0 {
			return []int{1, 2}
		}
		return nil
	}

	// Skip 2
	res, err := dfs.DFS(n, neighbors, 0, dfs.WithFilterNeighbor(func(p int) bool {
		return p != 2
	}))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2], "filtered neighbor should not be visited")
}

func TestDFS_OnExitError(t *testing.T) {
	n, neighbors := 2, func(p int) []int {
		if p == 0 {
			return []int{1}
		}
		return nil
	}

	res, err := dfs.DFS(n, neighbors, 0, dfs.WithOnExit(func(p int) error {
		if p == 1 {
			return errors.New("halt at 1 on exit")
		}
		return nil
	}))
	assert.NotNil(t, res)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_Cancellation(t *testing.T) {
	n, neighbors := directedChain(1001)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(n, neighbors, 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no completion when canceled immediately")
}

func TestDFS_LargeChain_PostOrderDepthParent(t *testing.T) {
	const n = 10
	nn, neighbors := directedChain(n)
	res, err := dfs.DFS(nn, neighbors, 0)
	assert.NoError(t, err)

	expected := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		expected[n-1-i] = i
	}
	assert.Equal(t, expected, res.Order, "chain post-order reversed")

	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-2, res.Parent[n-1])
}

func TestDFS_BinaryTree_TraversalAndVisited(t *testing.T) {
	const depth = 4 // 15 points
	n, neighbors := directedBinaryTree(depth)
	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)

	assert.Len(t, res.Visited, n)
	for i := 0; i < n; i++ {
		assert.True(t, res.Visited[i], "point %d must be visited", i)
	}

	assert.Len(t, res.Order, n)
	assert.Equal(t, 0, res.Order[len(res.Order)-1], "root must finish last")
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	n, neighbors := directedBinaryTree(3) // 7 points
	var pre, post []int

	res, err := dfs.DFS(n, neighbors, 0,
		dfs.WithOnVisit(func(p int) error {
			pre = append(pre, p)
			if p == 3 {
				return errors.New("stop at 3")
			}
			return nil
		}),
		dfs.WithOnExit(func(p int) error {
			post = append(post, p)
			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for 3")
	assert.Contains(t, pre, 0)
	assert.Contains(t, pre, 3)
	// Since the error occurred in OnVisit, post-order remains empty
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestDFS_CancellationImmediate(t *testing.T) {
	n, neighbors := directedChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	res, err := dfs.DFS(n, neighbors, 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no points should finish when canceled immediately")
}

func TestDFS_DisconnectedComponent(t *testing.T) {
	// points 0..4 form a chain, points 5..9 are isolated
	n, neighbors := 10, func(p int) []int {
		if p < 4 {
			return []int{p + 1}
		}
		return nil
	}
	res, err := dfs.DFS(n, neighbors, 0)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{4, 3, 2, 1, 0}, res.Order)
	for i := 5; i < 10; i++ {
		assert.False(t, res.Visited[i], "disconnected point %d should not be visited", i)
	}
}
