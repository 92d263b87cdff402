// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("", "B", "a")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "A", "a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", "b")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("B", "C", "a", core.WithEdgeDirected(false))
	require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	// An override equal to the default is not a mixed-mode request.
	_, err = g.AddEdge("B", "C", "a", core.WithEdgeDirected(true))
	require.NoError(t, err)
}

func TestLabeledGraph_ParallelLabels(t *testing.T) {
	g := core.NewLabeledGraph()
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "1", "a")
	require.NoError(t, err)

	require.True(t, g.Directed())
	require.True(t, g.HasLabeledEdge("0", "1", "a"))
	require.True(t, g.HasLabeledEdge("0", "1", "b"))
	require.False(t, g.HasLabeledEdge("1", "0", "a"))
	require.Equal(t, []string{"a", "b"}, g.Labels())
	require.Len(t, g.EdgesByLabel("a"), 2)
	require.Empty(t, g.EdgesByLabel("zzz"))

	succ, err := g.LabeledSuccessors("0", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, succ)
}

func TestArcs_UndirectedAndUnlabeled(t *testing.T) {
	g := core.NewMixedGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err := g.AddEdge("x", "y", "r", core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = g.AddEdge("y", "z", "")
	require.NoError(t, err)
	_, err = g.AddEdge("y", "z", "s")
	require.NoError(t, err)

	require.Equal(t, []core.Arc{
		{From: "x", To: "y", Label: "r"},
		{From: "y", To: "x", Label: "r"},
		{From: "y", To: "z", Label: "s"},
	}, g.Arcs())

	st := g.Stats()
	require.Equal(t, 3, st.EdgeCount)
	require.Equal(t, 2, st.LabelCount)
	require.Equal(t, 1, st.UnlabeledEdgeCount)
	require.Equal(t, 1, st.UndirectedEdgeCount)
}

func TestRemoveEdgeAndVertex_UpdateLabelIndex(t *testing.T) {
	g := core.NewLabeledGraph()
	e1, _ := g.AddEdge("a", "b", "x")
	_, _ = g.AddEdge("b", "c", "y")
	_, _ = g.AddEdge("c", "a", "x")

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	require.Len(t, g.EdgesByLabel("x"), 1)

	require.NoError(t, g.RemoveVertex("b"))
	require.ErrorIs(t, g.RemoveVertex("b"), core.ErrVertexNotFound)
	require.Equal(t, []string{"x"}, g.Labels())
	require.Equal(t, []string{"a", "c"}, g.Vertices())
}

func TestEdges_NumericIDOrder(t *testing.T) {
	g := core.NewLabeledGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("u", "v", "l")
		require.NoError(t, err)
	}
	es := g.Edges()
	require.Equal(t, "e9", es[8].ID)
	require.Equal(t, "e10", es[9].ID)
}

func TestCloneAndViews(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("1", "2", "a")
	_, _ = g.AddEdge("2", "3", "b")
	_, _ = g.AddEdge("3", "1", "a")

	c := g.Clone()
	_, err := c.AddEdge("1", "3", "c")
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 4, c.EdgeCount())
	require.False(t, g.HasLabeledEdge("1", "3", "c"))

	ids := map[string]bool{}
	for _, e := range c.Edges() {
		require.False(t, ids[e.ID], "duplicate edge id %s", e.ID)
		ids[e.ID] = true
	}

	lv := core.LabelView(g, "a")
	require.Equal(t, 3, lv.VertexCount())
	require.Equal(t, 2, lv.EdgeCount())
	require.Equal(t, []string{"a"}, lv.Labels())

	sub := core.InducedSubgraph(g, map[string]bool{"1": true, "2": true})
	require.Equal(t, []string{"1", "2"}, sub.Vertices())
	require.Equal(t, 1, sub.EdgeCount())

	g.Clear()
	require.Zero(t, g.VertexCount())
	require.Empty(t, g.Labels())
}

func TestDegree_LoopsAndDirection(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("v", "v", "a")
	_, _ = g.AddEdge("u", "v", "b")

	in, out, und, err := g.Degree("v")
	require.NoError(t, err)
	require.Equal(t, 2, in)
	require.Equal(t, 1, out)
	require.Zero(t, und)

	_, _, _, err = g.Degree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
