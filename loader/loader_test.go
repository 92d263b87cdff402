// SPDX-License-Identifier: MIT
package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/loader"
)

func TestReadEdgeList(t *testing.T) {
	in := `# skos-like sample
0 1 type
1 2 subClassOf
2, 3 ,broader transitive
3 0   has   part

`
	g, err := loader.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasLabeledEdge("2", "3", "broader transitive"))
	assert.True(t, g.HasLabeledEdge("3", "0", "has part"))
	assert.True(t, g.Directed())
}

func TestReadEdgeList_Errors(t *testing.T) {
	for _, in := range []string{
		"0 1\n",
		"a,b\n",
		"a,,x\n",
		"0 1 a\n1 2\n",
	} {
		_, err := loader.ReadEdgeList(strings.NewReader(in))
		assert.ErrorIs(t, err, loader.ErrFormat, "%q", in)
	}

	_, err := loader.ReadEdgeList(strings.NewReader("0 1 a\n1 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEdgeList_RoundTrip(t *testing.T) {
	g, err := builder.Build(nil, builder.TwoCycles(3, 5, "a", "b"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteEdgeList(&buf, g))
	back, err := loader.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Arcs(), back.Arcs())
}

func TestYAML_RoundTrip(t *testing.T) {
	g := core.NewLabeledGraph()
	_, err := g.AddEdge("alice", "bob", "knows")
	require.NoError(t, err)
	_, err = g.AddEdge("bob", "bob", "likes")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("lonely"))

	var buf bytes.Buffer
	require.NoError(t, loader.WriteYAML(&buf, "people", g))
	assert.Contains(t, buf.String(), "name: people")

	back, name, err := loader.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, "people", name)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Arcs(), back.Arcs())
	assert.True(t, back.Directed())
}

func TestReadYAML(t *testing.T) {
	g, name, err := loader.ReadYAML(strings.NewReader(`
name: ring
directed: false
edges:
  - {from: a, to: b, label: x}
  - {from: b, to: c, label: x}
`))
	require.NoError(t, err)
	assert.Equal(t, "ring", name)
	assert.False(t, g.Directed())
	assert.True(t, g.HasLabeledEdge("b", "a", "x"))

	g, _, err = loader.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())

	_, _, err = loader.ReadYAML(strings.NewReader("edges:\n  - {from: a, to: b}\n"))
	assert.ErrorIs(t, err, loader.ErrFormat)
	_, _, err = loader.ReadYAML(strings.NewReader("vertices: [a]\n"))
	assert.ErrorIs(t, err, loader.ErrFormat)
	_, _, err = loader.ReadYAML(strings.NewReader("edges: {"))
	assert.ErrorIs(t, err, loader.ErrFormat)
}

func TestInfo(t *testing.T) {
	g, err := builder.Build(nil,
		builder.TwoCycles(3, 5, "a", "b"),
	)
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, builder.LabeledPath("c"), builder.WithOffset(100)))
	require.NoError(t, g.AddVertex("isolated"))
	_, err = g.AddEdge("isolated", "isolated", "")
	require.NoError(t, err)

	info, err := loader.Info(g)
	require.NoError(t, err)
	assert.Equal(t, loader.GraphInfo{
		Nodes:      12,
		Edges:      12,
		Labels:     []string{"a", "b", "c"},
		Unlabeled:  1,
		Components: 3,
		Acyclic:    false,
	}, info)
	assert.Contains(t, info.String(), "labels:     a, b, c")
	assert.Contains(t, info.String(), "acyclic:    no")

	path, err := builder.Build(nil, builder.LabeledPath("a", "b"))
	require.NoError(t, err)
	info, err = loader.Info(path)
	require.NoError(t, err)
	assert.True(t, info.Acyclic)
	assert.Equal(t, 1, info.Components)

	_, err = loader.Info(nil)
	assert.ErrorIs(t, err, loader.ErrGraphNil)
}

func TestWriteDOT(t *testing.T) {
	g := core.NewMixedGraph(core.WithDirected(true))
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", "first awesome label", core.WithEdgeDirected(false))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteDOT(&buf, "", g))
	assert.Equal(t, `digraph "G" {
	"0";
	"1";
	"2";
	"0" -> "1" [label="a"];
	"1" -> "2" [label="first awesome label", dir=none];
}
`, buf.String())
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	g, err := builder.Build(nil, builder.LabeledCycle(3, "a"))
	require.NoError(t, err)

	for _, name := range []string{"g.yaml", "g.csv", "g.txt", "g"} {
		path := filepath.Join(dir, name)
		require.NoError(t, loader.Save(path, g), name)
		back, err := loader.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, g.Arcs(), back.Arcs(), name)
	}

	require.NoError(t, loader.Save(filepath.Join(dir, "g.dot"), g))
	data, err := os.ReadFile(filepath.Join(dir, "g.dot"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `digraph "g" {`))

	_, err = loader.Load(filepath.Join(dir, "g.dot"))
	assert.ErrorIs(t, err, loader.ErrFormat)
	assert.ErrorIs(t, loader.Save(filepath.Join(dir, "g.json"), g), loader.ErrFormat)
	_, err = loader.Load(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
