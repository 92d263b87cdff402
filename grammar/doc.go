// SPDX-License-Identifier: MIT

// Package grammar parses context-free grammars, normalizes them and compiles
// them into recursive state machines for the CFPQ algorithms.
//
// What
//
//   - CFG: Start symbol plus Productions (Head → Body over Symbol values).
//   - Parse / MustParse: text form "S -> a S b | $", one rule per line,
//     '#' comments, quoted terminals. WithStart overrides the first head.
//   - Nullable, Generating, Reachable: symbol sets by fixpoint; Reachable runs
//     bfs.Reach over the symbol dependency graph.
//   - RemoveUseless, ToCNF, ToWeakCNF: value-returning transformations.
//   - RSM: one minimal DFA box per nonterminal (ParseRSM for EBNF-style text
//     with regex bodies, FromCFG for a CFG), flattened by NFA() for
//     automaton.Build.
//
// Weak Chomsky normal form
//
//	ToWeakCNF = ToCNF + {A → ε : A nullable in the input} minus useless
//	symbols. Hellings and the matrix algorithm seed every nullable
//	nonterminal on the diagonal, so the explicit ε-productions are what
//	makes L(G) and the CFPQ answer agree on empty paths.
//
// Symbol namespace
//
//	Terminals are edge labels. Nonterminal names live in the same namespace
//	when an RSM is intersected with a graph, so a graph label equal to a
//	nonterminal name is read as a summary edge by cfpq.Tensor.
//
// Errors
//
//   - ErrSyntax     malformed grammar or RSM text (parser error joined).
//   - ErrNoStart    no rule and no WithStart.
//   - ErrNilGrammar nil argument.
package grammar
