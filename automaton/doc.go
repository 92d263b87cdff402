// SPDX-License-Identifier: MIT

// Package automaton represents finite automata, and graphs viewed as automata,
// as adjacency matrices: a dense state index 0..n-1, one boolean n×n matrix per
// symbol and start/final subsets.
//
// Operations:
//
//	Build(nfa, cfg)             description → Automaton
//	FromGraph(g, start, final)  labeled graph → Automaton (every vertex a state)
//	(*Automaton).Accepts        word membership; unknown symbol ⇒ false
//	(*Automaton).TransitiveClosure, IsEmpty
//	Intersect / IntersectContext  Kronecker product over shared symbols only
//	SummaryGraph                mutable accumulator used by context-free queries
//
// An Automaton is read-only once built, so one instance may be shared by
// concurrent readers. SummaryGraph is the only type that mutates matrices.
package automaton
