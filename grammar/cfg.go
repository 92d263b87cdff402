// SPDX-License-Identifier: MIT

// File: cfg.go
// Role: CFG, Production and Symbol types; symbol inventories; text rendering.
// Determinism:
//   - Terminals() and Nonterminals() are sorted.
//   - String() lists heads in order of first appearance, Start first.

package grammar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is a grammar symbol: a terminal (an edge label) or a nonterminal.
type Symbol struct {
	Name     string
	Terminal bool
}

// Term returns the terminal symbol name.
func Term(name string) Symbol { return Symbol{Name: name, Terminal: true} }

// Var returns the nonterminal symbol name.
func Var(name string) Symbol { return Symbol{Name: name} }

// Production is Head → Body. An empty Body is an ε-production.
type Production struct {
	Head string
	Body []Symbol
}

// IsEpsilon reports whether p is Head → ε.
func (p Production) IsEpsilon() bool { return len(p.Body) == 0 }

// IsTerminal reports whether p is Head → a.
func (p Production) IsTerminal() bool { return len(p.Body) == 1 && p.Body[0].Terminal }

// IsBinary reports whether p is Head → B C with both B and C nonterminals.
func (p Production) IsBinary() bool {
	return len(p.Body) == 2 && !p.Body[0].Terminal && !p.Body[1].Terminal
}

// String renders p as "Head -> body", using "$" for ε.
func (p Production) String() string {
	return p.Head + " -> " + renderBody(p.Body)
}

// key identifies a production for de-duplication. Terminal and nonterminal
// symbols of the same name are kept apart.
func (p Production) key() string {
	var sb strings.Builder
	sb.WriteString(p.Head)
	for _, s := range p.Body {
		if s.Terminal {
			sb.WriteString("\x00t")
		} else {
			sb.WriteString("\x00v")
		}
		sb.WriteString(s.Name)
	}

	return sb.String()
}

// CFG is a context-free grammar. The zero value has no start symbol and is
// rejected by the query entry points.
//
// A CFG is a plain value: every transformation returns a new CFG and leaves
// its receiver untouched, so one grammar may be shared by concurrent queries.
type CFG struct {
	Start       string
	Productions []Production
}

// New returns a grammar over productions with the given start symbol.
// Duplicate productions are dropped; the first occurrence keeps its place.
func New(start string, productions ...Production) *CFG {
	return &CFG{Start: start, Productions: dedup(productions)}
}

// Nonterminals returns every nonterminal name (heads, body nonterminals and
// Start), sorted.
func (g *CFG) Nonterminals() []string {
	set := map[string]struct{}{}
	if g.Start != "" {
		set[g.Start] = struct{}{}
	}
	for _, p := range g.Productions {
		set[p.Head] = struct{}{}
		for _, s := range p.Body {
			if !s.Terminal {
				set[s.Name] = struct{}{}
			}
		}
	}

	return sortedSet(set)
}

// Terminals returns every terminal name, sorted.
func (g *CFG) Terminals() []string {
	set := map[string]struct{}{}
	for _, p := range g.Productions {
		for _, s := range p.Body {
			if s.Terminal {
				set[s.Name] = struct{}{}
			}
		}
	}

	return sortedSet(set)
}

// ProductionsOf returns the productions headed by head, in grammar order.
func (g *CFG) ProductionsOf(head string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Head == head {
			out = append(out, p)
		}
	}

	return out
}

// String renders the grammar in the text form accepted by Parse, one line
// per head. Terminals that Parse would read as nonterminals are quoted.
// Nonterminals are expected to start upper-case or to head a production.
func (g *CFG) String() string {
	heads := g.headOrder()
	isHead := make(map[string]bool, len(heads))
	for _, h := range heads {
		isHead[h] = true
	}

	var sb strings.Builder
	for _, h := range heads {
		sb.WriteString(h)
		sb.WriteString(" -> ")
		for i, p := range g.ProductionsOf(h) {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(renderBodyQuoted(p.Body, isHead))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// headOrder lists heads by first appearance, Start first when it has rules.
func (g *CFG) headOrder() []string {
	var order []string
	seen := map[string]bool{}
	if len(g.ProductionsOf(g.Start)) > 0 {
		order = append(order, g.Start)
		seen[g.Start] = true
	}
	for _, p := range g.Productions {
		if !seen[p.Head] {
			seen[p.Head] = true
			order = append(order, p.Head)
		}
	}

	return order
}

var plainIdent = regexp.MustCompile(`^[A-Za-z0-9_:/.']+$`)

func renderBody(body []Symbol) string {
	if len(body) == 0 {
		return "$"
	}
	names := make([]string, len(body))
	for i, s := range body {
		names[i] = s.Name
	}

	return strings.Join(names, " ")
}

func renderBodyQuoted(body []Symbol, isHead map[string]bool) string {
	if len(body) == 0 {
		return "$"
	}
	names := make([]string, len(body))
	for i, s := range body {
		names[i] = s.Name
		if s.Terminal && (isHead[s.Name] || startsUpper(s.Name) || !plainIdent.MatchString(s.Name) || s.Name == "epsilon") {
			names[i] = strconv.Quote(s.Name)
		}
	}

	return strings.Join(names, " ")
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func dedup(ps []Production) []Production {
	seen := make(map[string]struct{}, len(ps))
	out := make([]Production, 0, len(ps))
	for _, p := range ps {
		k := p.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		body := append([]Symbol(nil), p.Body...)
		out = append(out, Production{Head: p.Head, Body: body})
	}

	return out
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
