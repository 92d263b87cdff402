// SPDX-License-Identifier: MIT

// File: normal_form.go
// Role: Chomsky normal form and weak Chomsky normal form.
// Determinism:
//   - Fresh nonterminal names and production order depend only on the input
//     production order.

package grammar

import (
	"sort"
	"strconv"
)

// ToCNF returns a grammar in Chomsky normal form for L(g) \ {ε}: every
// production is A → a or A → B C.
//
// Implementation:
//   - Stage 1: Remove useless symbols.
//   - Stage 2: Eliminate ε-productions by expanding every subset of nullable
//     body positions.
//   - Stage 3: Eliminate unit productions A → B through unit closures.
//   - Stage 4: Remove useless symbols again.
//   - Stage 5: Replace terminals in long bodies with fresh nonterminals T_a → a.
//   - Stage 6: Binarize bodies longer than two with fresh chain nonterminals.
//
// Fresh names are built from the replaced symbol ("T_a", "S_1", ...) with a
// numeric suffix when the name is already taken.
//
// Complexity: Stage 2 is exponential in the number of nullable symbols of a
// single body; everything else is polynomial in |P|.
func (g *CFG) ToCNF() *CFG {
	base := g.RemoveUseless()
	names := newNamer(g)

	noEps := eliminateEpsilon(base)
	noUnit := eliminateUnits(noEps)
	clean := noUnit.RemoveUseless()

	out := &CFG{Start: g.Start}
	terms := map[string]string{}
	var termRules []Production
	for _, p := range clean.Productions {
		if len(p.Body) < 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		body := make([]Symbol, len(p.Body))
		for i, s := range p.Body {
			if !s.Terminal {
				body[i] = s
				continue
			}
			v, ok := terms[s.Name]
			if !ok {
				name := "T_" + s.Name
				if !plainIdent.MatchString(name) {
					name = "T"
				}
				v = names.fresh(name)
				terms[s.Name] = v
				termRules = append(termRules, Production{Head: v, Body: []Symbol{s}})
			}
			body[i] = Var(v)
		}
		out.Productions = append(out.Productions, binarize(p.Head, body, names)...)
	}
	out.Productions = dedup(append(out.Productions, termRules...))

	return out
}

// ToWeakCNF returns the weak Chomsky normal form of g: ToCNF plus an explicit
// A → ε for every nullable nonterminal A of g, then useless-symbol removal.
// The result derives exactly L(g) from every surviving nonterminal.
//
// Productions have the shapes A → a, A → B C and A → ε.
func (g *CFG) ToWeakCNF() *CFG {
	cnf := g.ToCNF()
	nullable := g.Nullable()

	heads := make([]string, 0, len(nullable))
	for h := range nullable {
		heads = append(heads, h)
	}
	sort.Strings(heads)

	out := &CFG{Start: cnf.Start, Productions: append([]Production(nil), cnf.Productions...)}
	for _, h := range heads {
		out.Productions = append(out.Productions, Production{Head: h})
	}

	return out.RemoveUseless()
}

// IsWeakCNF reports whether every production has shape A → a, A → B C or A → ε.
func (g *CFG) IsWeakCNF() bool {
	for _, p := range g.Productions {
		if !p.IsEpsilon() && !p.IsTerminal() && !p.IsBinary() {
			return false
		}
	}

	return true
}

// eliminateEpsilon replaces every production by its variants with nullable
// nonterminals optionally dropped; empty variants are discarded.
func eliminateEpsilon(g *CFG) *CFG {
	nullable := g.Nullable()
	out := &CFG{Start: g.Start}
	for _, p := range g.Productions {
		variants := [][]Symbol{nil}
		for _, s := range p.Body {
			next := make([][]Symbol, 0, 2*len(variants))
			for _, v := range variants {
				next = append(next, appendSym(v, s))
				if !s.Terminal && nullable[s.Name] {
					next = append(next, v)
				}
			}
			variants = next
		}
		for _, v := range variants {
			if len(v) > 0 {
				out.Productions = append(out.Productions, Production{Head: p.Head, Body: v})
			}
		}
	}
	out.Productions = dedup(out.Productions)

	return out
}

// eliminateUnits replaces unit productions A → B by A → α for every
// non-unit B' → α with B' in the unit closure of A.
func eliminateUnits(g *CFG) *CFG {
	isUnit := func(p Production) bool { return len(p.Body) == 1 && !p.Body[0].Terminal }

	units := map[string][]string{}
	for _, p := range g.Productions {
		if isUnit(p) {
			units[p.Head] = append(units[p.Head], p.Body[0].Name)
		}
	}

	out := &CFG{Start: g.Start}
	for _, head := range headsInOrder(g) {
		closure := []string{head}
		seen := map[string]bool{head: true}
		for k := 0; k < len(closure); k++ {
			for _, b := range units[closure[k]] {
				if !seen[b] {
					seen[b] = true
					closure = append(closure, b)
				}
			}
		}
		for _, b := range closure {
			for _, p := range g.ProductionsOf(b) {
				if !isUnit(p) {
					out.Productions = append(out.Productions, Production{Head: head, Body: p.Body})
				}
			}
		}
	}
	out.Productions = dedup(out.Productions)

	return out
}

// binarize splits head → X1 .. Xn (n > 2) into a chain of binary rules.
func binarize(head string, body []Symbol, names *namer) []Production {
	if len(body) <= 2 {
		return []Production{{Head: head, Body: body}}
	}

	out := make([]Production, 0, len(body)-1)
	cur := head
	for i := 0; i < len(body)-2; i++ {
		next := names.fresh(head + "_" + strconv.Itoa(i+1))
		out = append(out, Production{Head: cur, Body: []Symbol{body[i], Var(next)}})
		cur = next
	}
	out = append(out, Production{Head: cur, Body: []Symbol{body[len(body)-2], body[len(body)-1]}})

	return out
}

func headsInOrder(g *CFG) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range g.Productions {
		if !seen[p.Head] {
			seen[p.Head] = true
			out = append(out, p.Head)
		}
	}

	return out
}

func appendSym(v []Symbol, s Symbol) []Symbol {
	out := make([]Symbol, len(v), len(v)+1)
	copy(out, v)

	return append(out, s)
}

// namer hands out symbol names not yet used by a grammar.
type namer struct {
	used map[string]bool
}

func newNamer(g *CFG) *namer {
	n := &namer{used: map[string]bool{}}
	for _, s := range g.Nonterminals() {
		n.used[s] = true
	}
	for _, s := range g.Terminals() {
		n.used[s] = true
	}

	return n
}

func (n *namer) fresh(base string) string {
	name := base
	for k := 1; n.used[name]; k++ {
		name = base + "_" + strconv.Itoa(k)
	}
	n.used[name] = true

	return name
}
