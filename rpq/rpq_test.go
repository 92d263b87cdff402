// SPDX-License-Identifier: MIT
package rpq_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/query"
	"github.com/katalvlaran/lvpath/regex"
	"github.com/katalvlaran/lvpath/rpq"
)

type algo struct {
	name string
	run  func(context.Context, string, *core.Graph, ...query.Option) (query.Result, error)
}

var algos = []algo{
	{"tensor", rpq.Tensor},
	{"msbfs", rpq.MultiSource},
}

var formats = []matrix.Format{matrix.FormatDense, matrix.FormatSparse}

func graphOf(t testing.TB, arcs ...[3]string) *core.Graph {
	t.Helper()
	g := core.NewLabeledGraph()
	for _, a := range arcs {
		_, err := g.AddEdge(a[0], a[1], a[2])
		require.NoError(t, err)
	}

	return g
}

func randomGraph(seed int64, n, m int, labels []string) *core.Graph {
	rnd := rand.New(rand.NewSource(seed))
	g := core.NewLabeledGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprint(i))
	}
	for k := 0; k < m; k++ {
		u, v := fmt.Sprint(rnd.Intn(n)), fmt.Sprint(rnd.Intn(n))
		_, _ = g.AddEdge(u, v, labels[rnd.Intn(len(labels))])
	}

	return g
}

// bruteForce walks the (node, DFA state) product graph from every start node.
func bruteForce(t testing.TB, pattern string, g *core.Graph, start, final []string) query.Result {
	t.Helper()
	d := regex.MustCompile(pattern)
	sf := query.Filter(g, start)
	ff := query.Filter(g, final)

	succ := map[string][]core.Arc{}
	for _, a := range g.Arcs() {
		succ[a.From] = append(succ[a.From], a)
	}

	type state struct {
		v string
		q int
	}
	var res query.Result
	for _, u := range g.Vertices() {
		if !sf.Admits(u) {
			continue
		}
		seen := map[state]bool{{u, 0}: true}
		queue := []state{{u, 0}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if d.IsFinal(cur.q) && ff.Admits(cur.v) {
				res.Add(u, cur.v)
			}
			for _, a := range succ[cur.v] {
				q, ok := d.Next(cur.q, a.Label)
				if !ok {
					continue
				}
				nxt := state{a.To, q}
				if !seen[nxt] {
					seen[nxt] = true
					queue = append(queue, nxt)
				}
			}
		}
	}

	return res
}

func TestWorkedExample(t *testing.T) {
	g := graphOf(t, [3]string{"0", "1", "a"}, [3]string{"1", "1", "a"}, [3]string{"1", "2", "b"})
	want := query.NewResult(query.Pair{From: "0", To: "2"}, query.Pair{From: "1", To: "2"})

	for _, a := range algos {
		for _, f := range formats {
			t.Run(a.name+"/"+f.String(), func(t *testing.T) {
				got, err := a.run(context.Background(), "a*b", g, query.WithFormat(f))
				require.NoError(t, err)
				assert.True(t, want.Equal(got), "got %v", got.Pairs())
			})
		}
	}
}

func TestOracle_TensorEqualsMultiSource(t *testing.T) {
	labels := []string{"a", "b", "c"}
	patterns := []string{
		"a", "a*", "a b", "(a|b)* c", "a+ b?", "$", "c (a b)* c", "(a|b|c)*", "d", "a* | b*",
	}
	filters := []struct {
		name         string
		start, final []string
	}{
		{"all", nil, nil},
		{"some", []string{"0", "3", "5"}, []string{"1", "2", "3", "7"}},
		{"absent", []string{"0", "nope"}, []string{"missing"}},
		{"start-only", []string{"4"}, nil},
	}

	for seed := int64(1); seed <= 4; seed++ {
		g := randomGraph(seed, 9, 20, labels)
		for _, p := range patterns {
			for _, fl := range filters {
				oracle := bruteForce(t, p, g, fl.start, fl.final)
				for _, f := range formats {
					opts := []query.Option{
						query.WithFormat(f),
						query.WithStartNodes(fl.start...),
						query.WithFinalNodes(fl.final...),
					}
					tr, err := rpq.Tensor(context.Background(), p, g, opts...)
					require.NoError(t, err)
					ms, err := rpq.MultiSource(context.Background(), p, g, append(opts, query.WithParallelism(3))...)
					require.NoError(t, err)

					name := fmt.Sprintf("seed=%d pattern=%q filter=%s format=%s", seed, p, fl.name, f)
					assert.True(t, tr.Equal(ms), "%s: tensor %v msbfs %v", name, tr.Pairs(), ms.Pairs())
					assert.True(t, oracle.Equal(tr), "%s: oracle %v tensor %v", name, oracle.Pairs(), tr.Pairs())
				}
			}
		}
	}
}

func TestEpsilonPattern(t *testing.T) {
	g := graphOf(t, [3]string{"x", "y", "a"})
	for _, a := range algos {
		got, err := a.run(context.Background(), "$", g, query.WithStartNodes("x", "y"), query.WithFinalNodes("y"))
		require.NoError(t, err)
		assert.Equal(t, []query.Pair{{From: "y", To: "y"}}, got.Pairs(), a.name)
	}
}

func TestUnknownSymbolAndEmptyGraph(t *testing.T) {
	g := graphOf(t, [3]string{"x", "y", "a"})
	empty := core.NewLabeledGraph()
	for _, a := range algos {
		got, err := a.run(context.Background(), "zzz", g)
		require.NoError(t, err)
		assert.Zero(t, got.Len(), a.name)

		got, err = a.run(context.Background(), "a*", empty)
		require.NoError(t, err)
		assert.Zero(t, got.Len(), a.name)
	}
}

func TestUndirectedEdgesTraverseBothWays(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("p", "q", "a")
	require.NoError(t, err)

	for _, a := range algos {
		got, err := a.run(context.Background(), "a a", g)
		require.NoError(t, err)
		assert.Equal(t, []query.Pair{{From: "p", To: "p"}, {From: "q", To: "q"}}, got.Pairs(), a.name)
	}
}

func TestErrors(t *testing.T) {
	g := graphOf(t, [3]string{"0", "1", "a"}, [3]string{"1", "2", "a"}, [3]string{"2", "3", "a"})

	for _, a := range algos {
		t.Run(a.name, func(t *testing.T) {
			_, err := a.run(context.Background(), "a", nil)
			require.ErrorIs(t, err, query.ErrGraphNil)

			_, err = a.run(context.Background(), "(a", g)
			require.ErrorIs(t, err, regex.ErrSyntax)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = a.run(ctx, "a*", g)
			require.ErrorIs(t, err, context.Canceled)

			_, err = a.run(context.Background(), "a*", g, query.WithMaxRounds(1))
			require.ErrorIs(t, err, query.ErrRoundLimit)
		})
	}
}

func TestAutomataEntryPoints(t *testing.T) {
	cfg := matrix.NewConfig(matrix.WithSparse())
	g := graphOf(t, [3]string{"0", "1", "a"}, [3]string{"1", "2", "b"})
	r, err := regex.Automaton("a b", cfg)
	require.NoError(t, err)
	gr, err := automaton.FromGraph(g, []string{"0"}, nil, cfg)
	require.NoError(t, err)

	tr, err := rpq.TensorAutomata(context.Background(), r, gr)
	require.NoError(t, err)
	ms, err := rpq.MultiSourceAutomata(context.Background(), r, gr)
	require.NoError(t, err)
	want := query.NewResult(query.Pair{From: "0", To: "2"})
	assert.True(t, want.Equal(tr))
	assert.True(t, want.Equal(ms))

	_, err = rpq.TensorAutomata(context.Background(), nil, gr)
	require.ErrorIs(t, err, query.ErrPatternNil)
	_, err = rpq.MultiSourceAutomata(context.Background(), r, nil)
	require.ErrorIs(t, err, query.ErrGraphNil)
}
