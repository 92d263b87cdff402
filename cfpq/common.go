// SPDX-License-Identifier: MIT

package cfpq

import (
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/query"
)

// nodeIndex is the dense, lexicographic node index of one graph snapshot.
type nodeIndex struct {
	nodes []string
	index map[string]int
	arcs  []core.Arc
}

func indexGraph(g *core.Graph) nodeIndex {
	nodes := g.Vertices()
	idx := make(map[string]int, len(nodes))
	for i, v := range nodes {
		idx[v] = i
	}

	return nodeIndex{nodes: nodes, index: idx, arcs: g.Arcs()}
}

// weakCNF validates the inputs of the grammar-based algorithms and
// normalizes the grammar.
func weakCNF(cfg *grammar.CFG, g *core.Graph) (*grammar.CFG, error) {
	switch {
	case g == nil:
		return nil, query.ErrGraphNil
	case cfg == nil:
		return nil, query.ErrPatternNil
	case cfg.Start == "":
		return nil, grammar.ErrNoStart
	}

	return cfg.ToWeakCNF(), nil
}

// terminalHeads maps each terminal a to the heads H of productions H → a.
func terminalHeads(w *grammar.CFG) map[string][]string {
	out := make(map[string][]string)
	for _, p := range w.Productions {
		if p.IsTerminal() {
			out[p.Body[0].Name] = append(out[p.Body[0].Name], p.Head)
		}
	}

	return out
}

// epsilonHeads lists the heads of ε-productions, in grammar order.
func epsilonHeads(w *grammar.CFG) []string {
	var out []string
	for _, p := range w.Productions {
		if p.IsEpsilon() {
			out = append(out, p.Head)
		}
	}

	return out
}

// collect filters (from, to) index pairs through the start/final filters.
func collect(ix nodeIndex, o query.Options, g *core.Graph, each func(fn func(i, j int))) query.Result {
	sf := query.Filter(g, o.Start)
	ff := query.Filter(g, o.Final)

	var res query.Result
	each(func(i, j int) {
		from, to := ix.nodes[i], ix.nodes[j]
		if sf.Admits(from) && ff.Admits(to) {
			res.Add(from, to)
		}
	})

	return res
}
