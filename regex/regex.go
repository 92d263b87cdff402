// SPDX-License-Identifier: MIT

package regex

import (
	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/matrix"
)

// Compile parses pattern and returns its minimal trimmed DFA.
//
// Implementation:
//   - Stage 1: Parse into an AST (participle).
//   - Stage 2: Linearize into a Glushkov position automaton.
//   - Stage 3: Subset construction.
//   - Stage 4: Moore minimization, removal of states that cannot accept,
//     breadth-first renumbering.
//
// Errors:
//   - ErrSyntax (joined with the parser error) for malformed text.
func Compile(pattern string) (*DFA, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	ps := &positions{}
	root := ps.alternation(ast)

	return minimize(determinize(ps, root)), nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// package-level patterns.
func MustCompile(pattern string) *DFA {
	d, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return d
}

// Automaton compiles pattern and builds its adjacency-matrix automaton.
func Automaton(pattern string, cfg matrix.Config) (*automaton.Automaton, error) {
	d, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	return automaton.Build(d.NFA(), cfg)
}
