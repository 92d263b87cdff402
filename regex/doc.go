// SPDX-License-Identifier: MIT

// Package regex compiles path-query patterns into minimal deterministic
// automata over edge labels.
//
// Syntax:
//
//	a  knows  "has part"   symbol: run of [A-Za-z0-9_\-:#/] or a quoted string
//	x y   x.y              concatenation
//	x|y                    alternation
//	x*  x+  x?             repetition (postfix, stackable)
//	( ... )                grouping
//	$  ε                   the empty word
//
// Symbols are whole labels: "ab" is one symbol, "a b" is two. A blank pattern
// denotes the empty word.
//
// Compile returns a *DFA; DFA.NFA feeds automaton.Build, and Automaton does
// both steps.
package regex
