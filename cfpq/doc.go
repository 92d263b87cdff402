// SPDX-License-Identifier: MIT

// Package cfpq answers context-free path queries: given a grammar and a
// labeled graph, find every (u, v) such that some path u → v spells a word
// derivable from the start nonterminal.
//
// Algorithms
//
//   - Hellings: normalize to weak CNF and grow the relation of
//     (nonterminal, u, v) triples with a worklist.
//   - Matrix: normalize to weak CNF and keep one boolean matrix per
//     nonterminal; every pass ORs in M[B]·M[C] for each A → B C until a
//     pass changes nothing.
//   - Tensor: take the grammar as a recursive state machine (one minimal
//     DFA box per nonterminal, see grammar.FromCFG and grammar.ParseRSM),
//     intersect it with the graph and add a summary edge u -A-> v whenever
//     box A can run from its start to a final state along u → v.
//
// All three return the same answers; tests hold them to each other and to
// a direct relational fixpoint over the unnormalized grammar.
//
// Graph labels and nonterminal names share one namespace in Tensor: a label
// equal to a box name is read as an existing summary edge.
//
// Options are those of package query. Errors: query.ErrGraphNil,
// query.ErrPatternNil, grammar.ErrNoStart, query.ErrRoundLimit, ctx.Err().
package cfpq
