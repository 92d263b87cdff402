// SPDX-License-Identifier: MIT

// File: dfa.go
// Role: subset construction, Moore minimization, trimming, and the DFA type.
// Determinism:
//   - States are numbered in breadth-first order from the start state,
//     exploring symbols in sorted order, so equal languages give equal DFAs.

package regex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/lvpath/automaton"
)

// DFA is a minimal, trimmed, partial deterministic automaton. State 0 is the
// start state; a missing transition means rejection.
type DFA struct {
	symbols []string
	final   []bool
	delta   []map[string]int
}

// Empty returns the DFA of the empty language: a single non-final start
// state with no transitions.
func Empty() *DFA {
	return &DFA{final: []bool{false}, delta: []map[string]int{{}}}
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.final) }

// States returns the state names "0".."n-1".
func (d *DFA) States() []string {
	out := make([]string, len(d.final))
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

// Start returns the start state name.
func (d *DFA) Start() string { return "0" }

// Finals returns the final state names in index order.
func (d *DFA) Finals() []string {
	var out []string
	for i, f := range d.final {
		if f {
			out = append(out, strconv.Itoa(i))
		}
	}

	return out
}

// IsFinal reports whether state i is final.
func (d *DFA) IsFinal(i int) bool { return i >= 0 && i < len(d.final) && d.final[i] }

// Symbols returns the alphabet actually used by transitions, sorted.
func (d *DFA) Symbols() []string { return append([]string(nil), d.symbols...) }

// Next returns the successor of state i on sym.
func (d *DFA) Next(i int, sym string) (int, bool) {
	if i < 0 || i >= len(d.delta) {
		return 0, false
	}
	j, ok := d.delta[i][sym]

	return j, ok
}

// Accepts reports whether word is in the language.
func (d *DFA) Accepts(word []string) bool {
	if len(d.final) == 0 {
		return false
	}
	cur := 0
	for _, sym := range word {
		next, ok := d.delta[cur][sym]
		if !ok {
			return false
		}
		cur = next
	}

	return d.final[cur]
}

// Transitions lists every transition sorted by (from, symbol).
func (d *DFA) Transitions() []automaton.Transition {
	var out []automaton.Transition
	for i, row := range d.delta {
		syms := make([]string, 0, len(row))
		for s := range row {
			syms = append(syms, s)
		}
		sort.Strings(syms)
		for _, s := range syms {
			out = append(out, automaton.Transition{From: strconv.Itoa(i), Symbol: s, To: strconv.Itoa(row[s])})
		}
	}

	return out
}

// NFA returns the automaton description for automaton.Build.
func (d *DFA) NFA() automaton.NFA {
	return automaton.NFA{
		States:      d.States(),
		Start:       []string{d.Start()},
		Final:       d.Finals(),
		Transitions: d.Transitions(),
	}
}

// String renders the transition table, one transition per line, finals marked with *.
func (d *DFA) String() string {
	var sb strings.Builder
	for i := range d.final {
		sb.WriteString(strconv.Itoa(i))
		if d.final[i] {
			sb.WriteByte('*')
		}
		sb.WriteByte(':')
		for _, t := range d.Transitions() {
			if t.From == strconv.Itoa(i) {
				sb.WriteString(" " + t.Symbol + "->" + t.To)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// determinize runs subset construction over the Glushkov automaton.
//
// NFA states: 0 is initial, p+1 is position p. Successors of 0 are first,
// successors of p+1 are follow[p]; every successor q+1 is entered on symbols[q].
func determinize(ps *positions, root linear) *DFA {
	alphabet := treeset.NewWithStringComparator()
	for _, s := range ps.symbols {
		alphabet.Add(s)
	}
	symbols := make([]string, 0, alphabet.Size())
	for _, v := range alphabet.Values() {
		symbols = append(symbols, v.(string))
	}

	isFinal := func(set *bitset.BitSet) bool {
		if set.Test(0) && root.nullable {
			return true
		}
		for p, ok := root.last.NextSet(0); ok; p, ok = root.last.NextSet(p + 1) {
			if set.Test(p + 1) {
				return true
			}
		}
		return false
	}
	successors := func(state uint) *bitset.BitSet {
		if state == 0 {
			return root.first
		}
		return ps.follow[state-1]
	}

	start := bitset.New(0)
	start.Set(0)

	d := &DFA{}
	ids := map[string]int{start.String(): 0}
	sets := []*bitset.BitSet{start}
	d.final = append(d.final, isFinal(start))
	d.delta = append(d.delta, map[string]int{})

	queue := linkedlistqueue.New()
	queue.Enqueue(0)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		id := v.(int)
		cur := sets[id]

		for _, sym := range symbols {
			next := bitset.New(0)
			for q, ok := cur.NextSet(0); ok; q, ok = cur.NextSet(q + 1) {
				succ := successors(q)
				for p, ok := succ.NextSet(0); ok; p, ok = succ.NextSet(p + 1) {
					if ps.symbols[p] == sym {
						next.Set(p + 1)
					}
				}
			}
			if next.None() {
				continue
			}
			key := next.String()
			nid, seen := ids[key]
			if !seen {
				nid = len(sets)
				ids[key] = nid
				sets = append(sets, next)
				d.final = append(d.final, isFinal(next))
				d.delta = append(d.delta, map[string]int{})
				queue.Enqueue(nid)
			}
			d.delta[id][sym] = nid
		}
	}
	d.symbols = symbols

	return d
}

// minimize merges equivalent states (Moore refinement), drops states that
// cannot reach a final state, and renumbers canonically.
func minimize(d *DFA) *DFA {
	n := d.NumStates()
	class := make([]int, n)
	for i := range class {
		if d.final[i] {
			class[i] = 1
		}
	}

	classes := countDistinct(class)
	for {
		sigs := make(map[string]int)
		next := make([]int, n)
		for i := 0; i < n; i++ {
			var sb strings.Builder
			sb.WriteString(strconv.Itoa(class[i]))
			for _, sym := range d.symbols {
				sb.WriteByte('|')
				if j, ok := d.delta[i][sym]; ok {
					sb.WriteString(strconv.Itoa(class[j]))
				} else {
					sb.WriteByte('-')
				}
			}
			key := sb.String()
			c, ok := sigs[key]
			if !ok {
				c = len(sigs)
				sigs[key] = c
			}
			next[i] = c
		}
		class = next
		if len(sigs) == classes {
			break
		}
		classes = len(sigs)
	}

	// Quotient automaton over classes.
	qFinal := make([]bool, classes)
	qDelta := make([]map[string]int, classes)
	for i := 0; i < n; i++ {
		c := class[i]
		qFinal[c] = d.final[i]
		if qDelta[c] == nil {
			qDelta[c] = make(map[string]int)
		}
		for sym, j := range d.delta[i] {
			qDelta[c][sym] = class[j]
		}
	}

	live := coReachable(qFinal, qDelta)

	return renumber(class[0], qFinal, qDelta, live)
}

// coReachable marks the states from which some final state is reachable.
func coReachable(final []bool, delta []map[string]int) []bool {
	n := len(final)
	rev := make([][]int, n)
	for i, row := range delta {
		for _, j := range row {
			rev[j] = append(rev[j], i)
		}
	}
	live := make([]bool, n)
	queue := linkedlistqueue.New()
	for i, f := range final {
		if f {
			live[i] = true
			queue.Enqueue(i)
		}
	}
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		for _, p := range rev[v.(int)] {
			if !live[p] {
				live[p] = true
				queue.Enqueue(p)
			}
		}
	}

	return live
}

// renumber keeps live states reachable from start, numbered breadth-first.
func renumber(start int, final []bool, delta []map[string]int, live []bool) *DFA {
	if !live[start] {
		return Empty()
	}
	alphabet := treeset.NewWithStringComparator()
	out := &DFA{}

	ids := map[int]int{start: 0}
	order := []int{start}
	for k := 0; k < len(order); k++ {
		old := order[k]
		syms := make([]string, 0, len(delta[old]))
		for s := range delta[old] {
			syms = append(syms, s)
		}
		sort.Strings(syms)
		for _, s := range syms {
			j := delta[old][s]
			if !live[j] {
				continue
			}
			if _, seen := ids[j]; !seen {
				ids[j] = len(order)
				order = append(order, j)
			}
		}
	}

	out.final = make([]bool, len(order))
	out.delta = make([]map[string]int, len(order))
	for newID, old := range order {
		out.final[newID] = final[old]
		out.delta[newID] = make(map[string]int)
		for s, j := range delta[old] {
			if nj, ok := ids[j]; ok {
				out.delta[newID][s] = nj
				alphabet.Add(s)
			}
		}
	}
	for _, v := range alphabet.Values() {
		out.symbols = append(out.symbols, v.(string))
	}

	return out
}

func countDistinct(xs []int) int {
	seen := make(map[int]struct{}, 2)
	for _, x := range xs {
		seen[x] = struct{}{}
	}

	return len(seen)
}
