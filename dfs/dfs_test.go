// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
)

// buildChain creates a labeled chain N0 -a-> N1 -a-> ... -a-> N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewLabeledGraph()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), "a")
	}

	return g
}

// diamond: A->B, A->C, B->D, C->D with labels x/y.
func diamond() *core.Graph {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("A", "C", "y")
	_, _ = g.AddEdge("B", "D", "x")
	_, _ = g.AddEdge("C", "D", "y")

	return g
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(core.NewLabeledGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(diamond(), "A", dfs.WithLabels(""))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_PostOrder(t *testing.T) {
	res, err := dfs.DFS(diamond(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B"}, res.Parent)
}

func TestDFS_Labels(t *testing.T) {
	res, err := dfs.DFS(diamond(), "A", dfs.WithLabels("y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "A"}, res.Order)
	assert.False(t, res.Visited["B"])
}

func TestDFS_UnlabeledEdgesAreNotFollowed(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("A", "B", "")
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_UndirectedEdgeIsTraversedBothWays(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "l")
	res, err := dfs.DFS(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	res, err := dfs.DFS(buildChain(5), "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)
	assert.NotContains(t, res.Parent, "N3")

	res, err = dfs.DFS(diamond(), "A", dfs.WithFilterNeighbor(func(id string) bool { return id != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "A"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := diamond()
	_, _ = g.AddEdge("X", "Y", "z")
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A", "Y", "X"}, res.Order)
}

func TestDFS_Hooks(t *testing.T) {
	var pre []string
	res, err := dfs.DFS(diamond(), "A",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, pre)
	assert.Len(t, res.Order, 4)

	boom := errors.New("boom")
	res, err = dfs.DFS(diamond(), "A", dfs.WithOnExit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
