// SPDX-License-Identifier: MIT

// File: summary.go
// Role: SummaryGraph, the one mutable automaton wrapper.
// AI-HINT (file):
//   - cfpq.Tensor owns a SummaryGraph per query and adds summary edges to it;
//     the Automaton it was created from is never touched.

package automaton

import "github.com/katalvlaran/lvpath/matrix"

// SummaryGraph accumulates summary edges over a private copy of a graph
// automaton. Edges are only ever added, so every change is monotone.
//
// A SummaryGraph is not safe for concurrent mutation.
type SummaryGraph struct {
	a *Automaton
}

// NewSummaryGraph deep-copies base into a new accumulator.
func NewSummaryGraph(base *Automaton) (*SummaryGraph, error) {
	if base == nil {
		return nil, automatonErrorf("NewSummaryGraph", ErrNilAutomaton)
	}
	cp := newAutomaton(base.cfg, base.NumStates())
	cp.states = append(cp.states, base.states...)
	for s, i := range base.index {
		cp.index[s] = i
	}
	cp.start = base.start.Clone()
	cp.final = base.final.Clone()
	for sym, m := range base.matrices {
		cp.matrices[sym] = m.Clone()
	}

	return &SummaryGraph{a: cp}, nil
}

// EnsureSymbol allocates an all-false matrix for sym if it has none.
func (s *SummaryGraph) EnsureSymbol(sym Symbol) {
	if _, ok := s.a.matrices[sym]; !ok {
		n := s.a.NumStates()
		s.a.matrices[sym] = matrix.New(s.a.cfg, n, n)
	}
}

// AddEdge records the edge i --sym--> j and reports whether it was new.
// Panics if i or j is not a state index.
func (s *SummaryGraph) AddEdge(sym Symbol, i, j int) bool {
	s.EnsureSymbol(sym)
	m := s.a.matrices[sym]
	if m.At(i, j) {
		return false
	}
	m.Set(i, j)

	return true
}

// Has reports whether the edge i --sym--> j is present.
func (s *SummaryGraph) Has(sym Symbol, i, j int) bool {
	m, ok := s.a.matrices[sym]
	return ok && m.At(i, j)
}

// Automaton returns the current state as a read-only Automaton view. The view
// shares storage with the accumulator: later AddEdge calls are visible
// through it, and it must not be used while AddEdge runs concurrently.
func (s *SummaryGraph) Automaton() *Automaton { return s.a }
