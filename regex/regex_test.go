// SPDX-License-Identifier: MIT
package regex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/regex"
)

func split(w string) []string {
	if w == "" {
		return nil
	}
	return strings.Split(w, " ")
}

func TestCompile_Membership(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a*b", []string{"b", "a b", "a a a b"}, []string{"", "a", "b a", "b b"}},
		{"a.b|c", []string{"a b", "c"}, []string{"a", "a b c", ""}},
		{"(a|b)+ c?", []string{"a", "b a", "a c", "b b c"}, []string{"", "c", "a c c"}},
		{"$", []string{""}, []string{"a"}},
		{"ε | x", []string{"", "x"}, []string{"x x"}},
		{"", []string{""}, []string{"a"}},
		{`"has part"* knows`, []string{"knows", "has part|knows"}, []string{"has"}},
		{"subClassOf_r* type", []string{"type", "subClassOf_r subClassOf_r type"}, []string{"subClassOf_r"}},
		{"a**", []string{"", "a", "a a"}, []string{"b"}},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			d, err := regex.Compile(tc.pattern)
			require.NoError(t, err)
			for _, w := range tc.accept {
				word := split(w)
				if strings.Contains(w, "|") {
					word = strings.Split(w, "|")
				}
				assert.True(t, d.Accepts(word), "accept %q", w)
			}
			for _, w := range tc.reject {
				assert.False(t, d.Accepts(split(w)), "reject %q", w)
			}
		})
	}
}

func TestCompile_Minimal(t *testing.T) {
	// (a|b)* and (a*b*)* denote the same language: one state, both loops.
	x := regex.MustCompile("(a|b)*")
	y := regex.MustCompile("(a* b*)*")
	require.Equal(t, 1, x.NumStates())
	require.Equal(t, x.Transitions(), y.Transitions())
	require.Equal(t, x.Finals(), y.Finals())

	// a*b needs exactly two states.
	d := regex.MustCompile("a*b")
	require.Equal(t, 2, d.NumStates())
	require.Equal(t, []string{"a", "b"}, d.Symbols())
	require.Equal(t, []string{"1"}, d.Finals())
	next, ok := d.Next(0, "a")
	require.True(t, ok)
	require.Equal(t, 0, next)
}

func TestCompile_SyntaxErrors(t *testing.T) {
	for _, p := range []string{"(a", "a|", "*a", "a)", `""`, "a . "} {
		_, err := regex.Compile(p)
		require.ErrorIs(t, err, regex.ErrSyntax, "pattern %q", p)
	}
	require.Panics(t, func() { regex.MustCompile("(") })
}

func TestAutomaton_MatchesDFA(t *testing.T) {
	for _, f := range []matrix.Format{matrix.FormatDense, matrix.FormatSparse} {
		a, err := regex.Automaton("a (b|c)* d", matrix.Config{Format: f})
		require.NoError(t, err)
		d := regex.MustCompile("a (b|c)* d")
		for _, w := range []string{"a d", "a b c b d", "a", "d", "a b"} {
			require.Equal(t, d.Accepts(split(w)), a.Accepts(split(w)), w)
		}
		require.Equal(t, d.NumStates(), a.NumStates())
	}
}
