// SPDX-License-Identifier: MIT

// File: rsm.go
// Role: recursive state machines: one minimal DFA box per nonterminal.
// Determinism:
//   - Labels() is sorted; States() and NFA() enumerate boxes in label order
//     and box states in DFA order.
// AI-HINT (file):
//   - A box transition on a label that names another box is a call; cfpq.Tensor
//     realises calls as summary edges in the graph automaton.

package grammar

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/regex"
)

// RSM is a recursive state machine: Boxes maps each nonterminal label to the
// DFA of its right-hand sides, and Initial names the box queries start from.
// Every box starts in its DFA state 0.
type RSM struct {
	Initial string
	Boxes   map[string]*regex.DFA
}

// RSMState names state State of the box Label.
type RSMState struct {
	Label string
	State int
}

// String renders the state as "label#state", the state name used by NFA.
func (s RSMState) String() string { return s.Label + "#" + strconv.Itoa(s.State) }

// Labels returns the box labels, sorted.
func (r *RSM) Labels() []string {
	out := make([]string, 0, len(r.Boxes))
	for l := range r.Boxes {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Box returns the DFA of label.
func (r *RSM) Box(label string) (*regex.DFA, bool) {
	d, ok := r.Boxes[label]
	return d, ok
}

// States enumerates every box state; index i of the result is state i of NFA().
func (r *RSM) States() []RSMState {
	var out []RSMState
	for _, l := range r.Labels() {
		for i := 0; i < r.Boxes[l].NumStates(); i++ {
			out = append(out, RSMState{Label: l, State: i})
		}
	}

	return out
}

// IsBoxStart reports whether s is the start state of its box.
func (r *RSM) IsBoxStart(s RSMState) bool {
	_, ok := r.Boxes[s.Label]
	return ok && s.State == 0
}

// IsBoxFinal reports whether s is a final state of its box.
func (r *RSM) IsBoxFinal(s RSMState) bool {
	d, ok := r.Boxes[s.Label]
	return ok && d.IsFinal(s.State)
}

// NFA flattens every box into one automaton description. States are named
// RSMState.String(); box starts and finals become start and final states.
func (r *RSM) NFA() automaton.NFA {
	var nfa automaton.NFA
	for _, s := range r.States() {
		nfa.States = append(nfa.States, s.String())
		if r.IsBoxStart(s) {
			nfa.Start = append(nfa.Start, s.String())
		}
		if r.IsBoxFinal(s) {
			nfa.Final = append(nfa.Final, s.String())
		}
	}
	for _, l := range r.Labels() {
		for _, t := range r.Boxes[l].Transitions() {
			nfa.Transitions = append(nfa.Transitions, automaton.Transition{
				From:   l + "#" + t.From,
				Symbol: t.Symbol,
				To:     l + "#" + t.To,
			})
		}
	}

	return nfa
}

// ParseRSM reads an RSM in EBNF style: one "Head -> regex" rule per line,
// with the regex syntax of package regex. Rules sharing a head are united.
// Blank lines and lines starting with '#' are skipped. The initial label is
// the first head unless WithStart is given.
//
// Errors:
//   - ErrSyntax for a line without an arrow or with a malformed head.
//   - regex.ErrSyntax (wrapped) for a malformed body.
//   - ErrNoStart if there is no rule and no WithStart.
func ParseRSM(text string, opts ...Option) (*RSM, error) {
	o := gatherOptions(opts)

	var order []string
	bodies := map[string][]string{}
	sc := bufio.NewScanner(strings.NewReader(text))
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		head, body, ok := splitRule(line)
		if !ok || !plainIdent.MatchString(head) {
			return nil, pkgerrors.WithStack(fmt.Errorf("%w: line %d: %q", ErrSyntax, lineNo, line))
		}
		if _, seen := bodies[head]; !seen {
			order = append(order, head)
		}
		bodies[head] = append(bodies[head], body)
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "grammar: read rsm")
	}

	initial := o.start
	if initial == "" && len(order) > 0 {
		initial = order[0]
	}
	if initial == "" {
		return nil, grammarErrorf("ParseRSM", ErrNoStart)
	}

	r := &RSM{Initial: initial, Boxes: make(map[string]*regex.DFA, len(order)+1)}
	for _, head := range order {
		d, err := regex.Compile(unite(bodies[head]))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "grammar: box %s", head)
		}
		r.Boxes[head] = d
	}
	if _, ok := r.Boxes[initial]; !ok {
		r.Boxes[initial] = regex.Empty()
	}

	return r, nil
}

// FromCFG builds the RSM of g: one box per nonterminal, whose DFA accepts the
// right-hand sides of its productions. Nonterminals without productions get
// an empty-language box, so a call to them never completes.
func FromCFG(g *CFG) (*RSM, error) {
	if g == nil {
		return nil, grammarErrorf("FromCFG", ErrNilGrammar)
	}
	if g.Start == "" {
		return nil, grammarErrorf("FromCFG", ErrNoStart)
	}

	r := &RSM{Initial: g.Start, Boxes: map[string]*regex.DFA{}}
	for _, nt := range g.Nonterminals() {
		prods := g.ProductionsOf(nt)
		if len(prods) == 0 {
			r.Boxes[nt] = regex.Empty()
			continue
		}
		alts := make([]string, len(prods))
		for i, p := range prods {
			alts[i] = bodyPattern(p.Body)
		}
		d, err := regex.Compile(strings.Join(alts, " | "))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "grammar: box %s", nt)
		}
		r.Boxes[nt] = d
	}

	return r, nil
}

// splitRule splits "head -> body" on the first arrow.
func splitRule(line string) (head, body string, ok bool) {
	for _, arrow := range []string{"->", "→", "::="} {
		if i := strings.Index(line, arrow); i >= 0 {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(arrow):]), true
		}
	}

	return "", "", false
}

// unite joins regex bodies into one alternation; a blank body stands for ε.
func unite(bodies []string) string {
	if len(bodies) == 1 {
		return bodies[0]
	}
	parts := make([]string, len(bodies))
	for i, b := range bodies {
		if b == "" {
			b = "$"
		}
		parts[i] = "(" + b + ")"
	}

	return strings.Join(parts, " | ")
}

// bodyPattern renders a production body as a regex concatenation of quoted symbols.
func bodyPattern(body []Symbol) string {
	if len(body) == 0 {
		return "$"
	}
	parts := make([]string, len(body))
	for i, s := range body {
		parts[i] = strconv.Quote(s.Name)
	}

	return strings.Join(parts, " ")
}
