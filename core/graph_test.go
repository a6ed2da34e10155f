// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph's trimmed adjacency surface:
// vertex/edge lifecycle, membership, degree, and neighbor lookup.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcoset/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("b"))
	assert.Equal(t, 1, g.VertexCount())

	// idempotent
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestGraph_Vertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestGraph_AddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"), "undirected edges must mirror")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_AddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestGraph_AddEdge_WeightPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	gw := core.NewGraph(core.WithWeighted())
	_, err = gw.AddEdge("a", "b", 5)
	require.NoError(t, err)
}

func TestGraph_AddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	_, err = gl.AddEdge("a", "a", 0)
	require.NoError(t, err)
}

func TestGraph_AddEdge_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	gm := core.NewGraph(core.WithMultiEdges())
	_, err = gm.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = gm.AddEdge("a", "b", 0)
	assert.NoError(t, err)
}

func TestGraph_AddEdge_MixedEdgesPolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	gm := core.NewGraph(core.WithMixedEdges())
	_, err = gm.AddEdge("a", "b", 0, core.WithEdgeDirected(true))
	require.NoError(t, err)
	assert.True(t, gm.HasEdge("a", "b"))
	assert.False(t, gm.HasEdge("b", "a"))
}

func TestGraph_NeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 0)
	require.NoError(t, err)

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.NeighborIDs("zzz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Degree(t *testing.T) {
	g := core.NewGraph(core.WithMixedEdges(), core.WithLoops())
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 0, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("a", "a", 0, core.WithEdgeDirected(true))
	require.NoError(t, err)

	in, out, undirected, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 1, in, "self-loop contributes to in")
	assert.Equal(t, 2, out, "directed edge to c + self-loop")
	assert.Equal(t, 1, undirected, "undirected edge to b")

	_, _, _, err = g.Degree("zzz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddVertex(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = g.AddVertex(string(rune('a' + n%26)))
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, g.VertexCount(), 26)
}
