// SPDX-License-Identifier: MIT

// File: glushkov.go
// Role: AST → position automaton (Glushkov construction).
//
// Every symbol occurrence in the pattern becomes a position p. The automaton
// has one initial state 0 and one state p+1 per position; entering state p+1
// reads the symbol of p. first/last/follow sets are computed bottom-up:
//
//	concat(x, y): follow(last x) ∪= first y
//	x*, x+      : follow(last x) ∪= first x
//
// The result is epsilon-free by construction, which is why subset
// construction needs no epsilon closure.

package regex

import "github.com/bits-and-blooms/bitset"

// linear is the first/last/nullable summary of one sub-expression.
type linear struct {
	nullable bool
	first    *bitset.BitSet
	last     *bitset.BitSet
}

// positions is the linearized pattern.
type positions struct {
	symbols []string         // symbols[p] is the symbol at position p
	follow  []*bitset.BitSet // follow[p] holds the positions that may follow p
}

func newLinear(nullable bool) linear {
	return linear{nullable: nullable, first: bitset.New(0), last: bitset.New(0)}
}

func (ps *positions) alternation(n *alternation) linear {
	out := newLinear(false)
	for _, term := range n.Terms {
		l := ps.concat(term)
		out.nullable = out.nullable || l.nullable
		out.first.InPlaceUnion(l.first)
		out.last.InPlaceUnion(l.last)
	}

	return out
}

func (ps *positions) concat(n *concat) linear {
	out := newLinear(true)
	for _, f := range n.Factors {
		l := ps.repeat(f)
		ps.link(out.last, l.first)

		first := out.first.Clone()
		if out.nullable {
			first.InPlaceUnion(l.first)
		}
		last := l.last.Clone()
		if l.nullable {
			last.InPlaceUnion(out.last)
		}
		out = linear{nullable: out.nullable && l.nullable, first: first, last: last}
	}

	return out
}

func (ps *positions) repeat(n *repeat) linear {
	l := ps.atom(n.Atom)
	for _, op := range n.Ops {
		switch op {
		case "*":
			ps.link(l.last, l.first)
			l.nullable = true
		case "+":
			ps.link(l.last, l.first)
		case "?":
			l.nullable = true
		}
	}

	return l
}

func (ps *positions) atom(n *atom) linear {
	switch {
	case n.Epsilon:
		return newLinear(true)
	case n.Symbol != nil:
		p := uint(len(ps.symbols))
		ps.symbols = append(ps.symbols, *n.Symbol)
		ps.follow = append(ps.follow, bitset.New(0))
		l := newLinear(false)
		l.first.Set(p)
		l.last.Set(p)
		return l
	default:
		return ps.alternation(n.Group)
	}
}

// link adds every position of to to the follow set of every position of from.
func (ps *positions) link(from, to *bitset.BitSet) {
	if to.None() {
		return
	}
	for p, ok := from.NextSet(0); ok; p, ok = from.NextSet(p + 1) {
		ps.follow[p].InPlaceUnion(to)
	}
}
