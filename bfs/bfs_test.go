// Package bfs_test contains unit tests for breadth-first search:
// validation sentinels, hop depths, visit order determinism, parent-chain
// paths, and unreachable vertices.
package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := bfs.BFS(g, "ghost")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestBFS_WeightedGraphRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 3))
	_, err := bfs.BFS(g, "A")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

func TestBFS_DepthsOnChain(t *testing.T) {
	// A—B—C—D: depth grows one hop per link.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)
}

func TestBFS_VisitOrderDeterministic(t *testing.T) {
	// Neighbors expand in edge insertion order: B was wired before C.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "C", 0))
	require.NoError(t, g.AddEdge("B", "D", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))

	for i := 0; i < 10; i++ {
		res, err := bfs.BFS(g, "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
		assert.Equal(t, "B", res.Parent["D"], "D must be discovered from B, the earlier-queued neighbor")
	}
}

func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddVertex("Z"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.PathTo("C"))
	assert.Equal(t, []string{"A"}, res.PathTo("A"))
	assert.Nil(t, res.PathTo("Z"), "unreachable vertex has no path")
}

func TestBFS_DirectedReachability(t *testing.T) {
	// A→B→C forward only; starting at C nothing else is reachable.
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, res.Order)
}
