// SPDX-License-Identifier: MIT

// Package rpq answers regular path queries: given a pattern and a labeled
// graph, find every (u, v) such that some path u → v spells a word of the
// pattern's language.
//
// Algorithms
//
//   - Tensor: compile the pattern to a minimal DFA, intersect it with the
//     graph automaton (Kronecker product per shared label) and read the
//     answers off the transitive closure of the product.
//   - MultiSource: propagate a frontier of (regex state, graph node) pairs
//     for all start nodes at once, one row block per start node, until no
//     new pair appears. It never materializes the product closure.
//
// Both return identical results; tests hold them to each other and to a
// direct product-graph walk on random graphs and both matrix backends.
//
// Options (package query)
//
//   - WithStartNodes / WithFinalNodes: restrict reported pairs; empty means
//     every node, absent IDs are ignored.
//   - WithFormat: dense (bitset rows) or sparse matrices.
//   - WithParallelism: goroutines per round (Kronecker products, per-label advances).
//   - WithMaxRounds, WithLogger, WithTracerProvider.
//
// Errors
//
//   - query.ErrGraphNil, query.ErrPatternNil, regex.ErrSyntax,
//     query.ErrRoundLimit and ctx.Err().
package rpq
