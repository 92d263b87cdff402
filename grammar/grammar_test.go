// SPDX-License-Identifier: MIT
package grammar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/regex"
)

// words enumerates every word over alphabet of length ≤ maxLen.
func words(alphabet []string, maxLen int) [][]string {
	out := [][]string{nil}
	layer := [][]string{nil}
	for l := 1; l <= maxLen; l++ {
		var next [][]string
		for _, w := range layer {
			for _, a := range alphabet {
				nw := append(append([]string(nil), w...), a)
				next = append(next, nw)
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}

// cyk decides membership for a grammar in weak CNF.
func cyk(g *grammar.CFG, w []string) bool {
	if len(w) == 0 {
		for _, p := range g.ProductionsOf(g.Start) {
			if p.IsEpsilon() {
				return true
			}
		}
		return false
	}
	n := len(w)
	table := make([][]map[string]bool, n)
	for i := range table {
		table[i] = make([]map[string]bool, n+1)
		for j := range table[i] {
			table[i][j] = map[string]bool{}
		}
	}
	for i, a := range w {
		for _, p := range g.Productions {
			if p.IsTerminal() && p.Body[0].Name == a {
				table[i][i+1][p.Head] = true
			}
		}
	}
	for span := 2; span <= n; span++ {
		for i := 0; i+span <= n; i++ {
			j := i + span
			for k := i + 1; k < j; k++ {
				for _, p := range g.Productions {
					if p.IsBinary() && table[i][k][p.Body[0].Name] && table[k][j][p.Body[1].Name] {
						table[i][j][p.Head] = true
					}
				}
			}
		}
	}

	return table[0][n][g.Start]
}

func anbn(w []string) bool {
	if len(w)%2 != 0 {
		return false
	}
	h := len(w) / 2
	for i, s := range w {
		if (i < h && s != "a") || (i >= h && s != "b") {
			return false
		}
	}

	return true
}

func balanced(w []string) bool {
	depth := 0
	for _, s := range w {
		if s == "a" {
			depth++
		} else {
			depth--
		}
		if depth < 0 {
			return false
		}
	}

	return depth == 0
}

func TestParse_Basics(t *testing.T) {
	g, err := grammar.Parse(`
# a^n b^n
S -> a S b | $
`)
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start)
	assert.Equal(t, []string{"S"}, g.Nonterminals())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	require.Len(t, g.Productions, 2)
	assert.Equal(t, "S -> a S b", g.Productions[0].String())
	assert.True(t, g.Productions[1].IsEpsilon())
}

func TestParse_SymbolClassification(t *testing.T) {
	g := grammar.MustParse(`
expr -> term "Plus" expr | term
term -> X | num
S -> ε | epsilonic
`, grammar.WithStart("expr"))

	assert.Equal(t, "expr", g.Start)
	assert.Equal(t, []string{"S", "X", "expr", "term"}, g.Nonterminals())
	assert.Equal(t, []string{"Plus", "epsilonic", "num"}, g.Terminals())
}

func TestParse_MergesRulesAndDropsDuplicates(t *testing.T) {
	g := grammar.MustParse("S -> a\nS → b | a\nS ::= $\n")
	require.Len(t, g.Productions, 3)
	assert.Equal(t, "S -> a", g.Productions[0].String())
	assert.Equal(t, "S -> b", g.Productions[1].String())
	assert.Equal(t, "S -> $", g.Productions[2].String())
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"-> a",
		"S -> | a",
		"S a b",
		"S -> a S -> b",
		`S -> ""`,
	} {
		_, err := grammar.Parse(text)
		require.ErrorIs(t, err, grammar.ErrSyntax, "text %q", text)
	}

	_, err := grammar.Parse("  # nothing\n\n")
	require.ErrorIs(t, err, grammar.ErrNoStart)

	g, err := grammar.Parse("", grammar.WithStart("S"))
	require.NoError(t, err)
	assert.Empty(t, g.Productions)
}

func TestNullableGeneratingReachable(t *testing.T) {
	g := grammar.MustParse(`
S -> A B | C
A -> $
B -> b | $
C -> C c
D -> d
`)
	assert.Equal(t, map[string]bool{"S": true, "A": true, "B": true}, g.Nullable())
	assert.Equal(t, map[string]bool{"S": true, "A": true, "B": true, "D": true}, g.Generating())
	assert.Equal(t, map[string]bool{"S": true, "A": true, "B": true, "C": true}, g.Reachable())
}

func TestRemoveUseless(t *testing.T) {
	g := grammar.MustParse(`
S -> a | B
B -> B c
C -> d
`)
	u := g.RemoveUseless()
	assert.Equal(t, "S -> a\n", u.String())

	// Removing non-generating symbols first makes X unreachable.
	g2 := grammar.MustParse("S -> a | Y X\nX -> x\n")
	assert.Equal(t, "S -> a\n", g2.RemoveUseless().String())

	// Original grammar untouched.
	assert.Len(t, g.Productions, 4)
}

func TestToCNF_Shapes(t *testing.T) {
	g := grammar.MustParse(`
S -> a S b S | A
A -> c | $
`)
	cnf := g.ToCNF()
	for _, p := range cnf.Productions {
		assert.True(t, p.IsTerminal() || p.IsBinary(), "not CNF: %s", p)
	}
}

func TestToWeakCNF_Language(t *testing.T) {
	tests := []struct {
		name string
		text string
		in   func([]string) bool
	}{
		{"anbn", "S -> a S b | $", anbn},
		{"balanced", "S -> S S | a S b | $", balanced},
		{"chain", "S -> A\nA -> B\nB -> a B b | $", anbn},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := grammar.MustParse(tc.text).ToWeakCNF()
			require.True(t, w.IsWeakCNF(), w.String())
			for _, word := range words([]string{"a", "b"}, 6) {
				assert.Equal(t, tc.in(word), cyk(w, word), "word %v", word)
			}
		})
	}
}

func TestToWeakCNF_NullableKeepsEpsilon(t *testing.T) {
	g := grammar.MustParse(`
S -> A S B | a
A -> x | $
B -> $
`)
	nullable := g.Nullable()
	require.Equal(t, map[string]bool{"A": true, "B": true}, nullable)

	w := g.ToWeakCNF()
	for _, nt := range w.Nonterminals() {
		if !nullable[nt] {
			continue
		}
		var hasEps bool
		for _, p := range w.ProductionsOf(nt) {
			hasEps = hasEps || p.IsEpsilon()
		}
		assert.True(t, hasEps, "%s is nullable but has no A -> ε in\n%s", nt, w)
	}
	assert.Equal(t, w.Nullable(), mapsIntersect(nullable, w.Nonterminals()))
}

func mapsIntersect(m map[string]bool, keys []string) map[string]bool {
	out := map[string]bool{}
	for _, k := range keys {
		if m[k] {
			out[k] = true
		}
	}

	return out
}

func TestToWeakCNF_EpsilonOnly(t *testing.T) {
	w := grammar.MustParse("S -> $").ToWeakCNF()
	assert.Equal(t, "S -> $\n", w.String())
}

func TestString_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"S -> a S b | $\n",
		"S -> S S | a S b | $\n",
		"S -> NP VP\nNP -> \"The\" n\nVP -> v | v NP\n",
	} {
		g := grammar.MustParse(text)
		back, err := grammar.Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, back)

		w := g.ToWeakCNF()
		wb, err := grammar.Parse(w.String(), grammar.WithStart(w.Start))
		require.NoError(t, err)
		assert.ElementsMatch(t, w.Productions, wb.Productions)
	}
}

func TestFromCFG(t *testing.T) {
	g := grammar.MustParse("S -> a S b | $\nT -> U\n")
	r, err := grammar.FromCFG(g)
	require.NoError(t, err)

	assert.Equal(t, "S", r.Initial)
	assert.Equal(t, []string{"S", "T", "U"}, r.Labels())

	box, ok := r.Box("S")
	require.True(t, ok)
	assert.True(t, box.Accepts(nil))
	assert.True(t, box.Accepts([]string{"a", "S", "b"}))
	assert.False(t, box.Accepts([]string{"a", "b"}))

	u, _ := r.Box("U")
	assert.Empty(t, u.Finals())

	_, err = grammar.FromCFG(nil)
	require.ErrorIs(t, err, grammar.ErrNilGrammar)
	_, err = grammar.FromCFG(&grammar.CFG{})
	require.ErrorIs(t, err, grammar.ErrNoStart)
}

func TestParseRSM(t *testing.T) {
	r, err := grammar.ParseRSM(`
# balanced brackets, EBNF style
S -> (a S b)*
S -> c
`)
	require.NoError(t, err)
	assert.Equal(t, "S", r.Initial)

	box, _ := r.Box("S")
	assert.True(t, box.Accepts(nil))
	assert.True(t, box.Accepts([]string{"a", "S", "b", "a", "S", "b"}))
	assert.True(t, box.Accepts([]string{"c"}))
	assert.False(t, box.Accepts([]string{"c", "c"}))

	_, err = grammar.ParseRSM("S a b")
	require.ErrorIs(t, err, grammar.ErrSyntax)
	_, err = grammar.ParseRSM("S -> (a")
	require.ErrorIs(t, err, regex.ErrSyntax)
	_, err = grammar.ParseRSM("\n# only a comment\n")
	require.ErrorIs(t, err, grammar.ErrNoStart)

	r, err = grammar.ParseRSM("A -> b", grammar.WithStart("S"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "S"}, r.Labels())
}

func TestRSM_NFA(t *testing.T) {
	r, err := grammar.ParseRSM("S -> a S b | $")
	require.NoError(t, err)

	nfa := r.NFA()
	states := r.States()
	require.Len(t, nfa.States, len(states))
	for i, s := range states {
		assert.Equal(t, s.String(), nfa.States[i])
		assert.True(t, strings.HasPrefix(nfa.States[i], "S#"))
	}
	assert.Equal(t, []string{"S#0"}, nfa.Start)
	assert.Contains(t, nfa.Final, "S#0")
	for _, tr := range nfa.Transitions {
		assert.Contains(t, []string{"a", "S", "b"}, tr.Symbol)
	}
}
