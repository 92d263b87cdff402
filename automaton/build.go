// SPDX-License-Identifier: MIT

// File: build.go
// Role: Build (NFA → Automaton) and FromGraph (labeled graph → Automaton).

package automaton

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/matrix"
)

// Build turns an automaton description into an adjacency-matrix automaton.
//
// Implementation:
//   - Stage 1: Index States in the order given (callers pass a stable order).
//   - Stage 2: Mark Start and Final.
//   - Stage 3: Allocate one n×n matrix per observed symbol and set its entries.
//
// Errors:
//   - ErrDuplicateState, ErrUnknownState, ErrEmptySymbol.
//
// Complexity:
//   - O(V + E) plus matrix allocation (O(|Σ|·n²/64) dense, O(|Σ|·n) sparse).
func Build(nfa NFA, cfg matrix.Config) (*Automaton, error) {
	a := newAutomaton(cfg, len(nfa.States))
	for i, s := range nfa.States {
		if _, dup := a.index[s]; dup {
			return nil, automatonErrorf("Build("+s+")", ErrDuplicateState)
		}
		a.index[s] = i
		a.states = append(a.states, s)
	}

	for _, s := range nfa.Start {
		i, ok := a.index[s]
		if !ok {
			return nil, automatonErrorf("Build: start "+s, ErrUnknownState)
		}
		a.start.Set(uint(i))
	}
	for _, s := range nfa.Final {
		i, ok := a.index[s]
		if !ok {
			return nil, automatonErrorf("Build: final "+s, ErrUnknownState)
		}
		a.final.Set(uint(i))
	}

	n := len(a.states)
	for _, t := range nfa.Transitions {
		if t.Symbol == "" {
			return nil, automatonErrorf("Build: "+t.From+"->"+t.To, ErrEmptySymbol)
		}
		from, ok := a.index[t.From]
		if !ok {
			return nil, automatonErrorf("Build: transition from "+t.From, ErrUnknownState)
		}
		to, ok := a.index[t.To]
		if !ok {
			return nil, automatonErrorf("Build: transition to "+t.To, ErrUnknownState)
		}
		m, ok := a.matrices[t.Symbol]
		if !ok {
			m = matrix.New(cfg, n, n)
			a.matrices[t.Symbol] = m
		}
		m.Set(from, to)
	}

	return a, nil
}

// FromGraph builds the graph automaton of g: one state per vertex (sorted by
// ID), one transition per traversable labeled arc (see core.Graph.Arcs).
//
// start and final restrict the start and final states. A nil or empty slice
// means every vertex. IDs absent from g are ignored, so a filter that names
// only absent vertices leaves the automaton with no start (or final) states.
//
// Errors:
//   - ErrNilGraph.
func FromGraph(g *core.Graph, start, final []string, cfg matrix.Config) (*Automaton, error) {
	if g == nil {
		return nil, automatonErrorf("FromGraph", ErrNilGraph)
	}
	vertices := g.Vertices()
	arcs := g.Arcs()

	nfa := NFA{
		States:      vertices,
		Start:       nodeFilter(g, vertices, start),
		Final:       nodeFilter(g, vertices, final),
		Transitions: make([]Transition, 0, len(arcs)),
	}
	for _, arc := range arcs {
		nfa.Transitions = append(nfa.Transitions, Transition{From: arc.From, Symbol: arc.Label, To: arc.To})
	}

	return Build(nfa, cfg)
}

// nodeFilter applies the "empty means all, absent is ignored" rule.
func nodeFilter(g *core.Graph, all, want []string) []string {
	if len(want) == 0 {
		return all
	}
	out := make([]string, 0, len(want))
	seen := make(map[string]struct{}, len(want))
	for _, id := range want {
		if _, dup := seen[id]; dup || !g.HasVertex(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func newAutomaton(cfg matrix.Config, n int) *Automaton {
	return &Automaton{
		cfg:      cfg,
		states:   make([]string, 0, n),
		index:    make(map[string]int, n),
		start:    bitset.New(uint(n)),
		final:    bitset.New(uint(n)),
		matrices: make(map[Symbol]matrix.Bool),
	}
}
