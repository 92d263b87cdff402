// SPDX-License-Identifier: MIT

// File: automaton.go
// Role: read-only accessors, Accepts, TransitiveClosure, IsEmpty.
// Determinism:
//   - Symbols() is sorted; StartStates()/FinalStates() follow index order.

package automaton

import (
	"context"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvpath/matrix"
)

// NumStates returns n.
func (a *Automaton) NumStates() int { return len(a.states) }

// Config returns the matrix backend configuration the automaton allocates with.
func (a *Automaton) Config() matrix.Config { return a.cfg }

// States returns the state names in index order.
func (a *Automaton) States() []string { return append([]string(nil), a.states...) }

// Index returns the dense index of state s.
func (a *Automaton) Index(s string) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// StateAt returns the name of state i. Panics if i is out of range.
func (a *Automaton) StateAt(i int) string { return a.states[i] }

// PairAt returns the operand states of product state i. ok is false on
// automata that were not built by Intersect.
func (a *Automaton) PairAt(i int) (p Pair, ok bool) {
	if a.pairs == nil || i < 0 || i >= len(a.pairs) {
		return Pair{}, false
	}

	return a.pairs[i], true
}

// IsStart reports whether state i is a start state.
func (a *Automaton) IsStart(i int) bool { return a.start.Test(uint(i)) }

// IsFinal reports whether state i is a final state.
func (a *Automaton) IsFinal(i int) bool { return a.final.Test(uint(i)) }

// StartIndices returns the start state indices in ascending order.
func (a *Automaton) StartIndices() []int { return members(a.start) }

// FinalIndices returns the final state indices in ascending order.
func (a *Automaton) FinalIndices() []int { return members(a.final) }

// StartStates returns the start state names in index order.
func (a *Automaton) StartStates() []string { return a.names(a.start) }

// FinalStates returns the final state names in index order.
func (a *Automaton) FinalStates() []string { return a.names(a.final) }

// Symbols returns the symbols that have a matrix, sorted.
func (a *Automaton) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.matrices))
	for s := range a.matrices {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Matrix returns the transition matrix of sym. The matrix is shared with the
// automaton and must not be mutated.
func (a *Automaton) Matrix(sym Symbol) (matrix.Bool, bool) {
	m, ok := a.matrices[sym]
	return m, ok
}

// Accepts reports whether the automaton accepts word.
//
// Implementation:
//   - Stage 1: current = start states.
//   - Stage 2: per symbol, current = ⋃ rows of M[symbol] selected by current;
//     a symbol with no matrix rejects immediately.
//   - Stage 3: accept iff current ∩ final ≠ ∅.
//
// Complexity: O(|word| · n · row cost).
func (a *Automaton) Accepts(word []Symbol) bool {
	current := a.start.Clone()
	for _, sym := range word {
		m, ok := a.matrices[sym]
		if !ok {
			return false
		}
		next := bitset.New(uint(len(a.states)))
		for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
			for _, j := range m.Row(int(i)) {
				next.Set(uint(j))
			}
		}
		if next.None() {
			return false
		}
		current = next
	}

	return current.IntersectionCardinality(a.final) > 0
}

// TransitiveClosure returns the reflexive-transitive closure of the union of
// all transition matrices. See TransitiveClosureContext.
func (a *Automaton) TransitiveClosure() matrix.Bool {
	closure, _ := a.TransitiveClosureContext(context.Background(), nil)
	return closure
}

// RoundHook runs before every fixpoint round; a non-nil error aborts the loop.
type RoundHook func(ctx context.Context) error

// TransitiveClosureContext returns the reflexive-transitive closure of the
// union of all transition matrices.
//
// Implementation:
//   - Stage 1: step = I ∪ ⋃_s M_s; closure = step.
//   - Stage 2: closure |= closure·step until a round changes nothing.
//
// Termination: each changing round sets at least one new entry of a finite
// n×n lattice and reachability by paths of length ≤ k+1 is complete after
// round k, so at most n rounds run.
//
// Errors:
//   - whatever before returns; before may be nil.
//
// Complexity: O(n · cost(Mul)).
func (a *Automaton) TransitiveClosureContext(ctx context.Context, before RoundHook) (matrix.Bool, error) {
	n := len(a.states)
	step := matrix.Identity(a.cfg, n)
	for _, sym := range a.Symbols() {
		_, _ = matrix.OrInPlace(step, a.matrices[sym])
	}

	closure := step.Clone()
	for round := 0; round <= n; round++ {
		if before != nil {
			if err := before(ctx); err != nil {
				return nil, err
			}
		}
		next, _ := matrix.Mul(closure, step)
		if changed, _ := matrix.OrInPlace(closure, next); !changed {
			break
		}
	}

	return closure, nil
}

// IsEmpty reports whether no final state is reachable from any start state.
func (a *Automaton) IsEmpty() bool {
	if a.start.None() || a.final.None() {
		return true
	}
	if a.start.IntersectionCardinality(a.final) > 0 {
		return false
	}
	closure := a.TransitiveClosure()
	for _, i := range a.StartIndices() {
		for _, j := range closure.Row(i) {
			if a.final.Test(uint(j)) {
				return false
			}
		}
	}

	return true
}

func (a *Automaton) names(b *bitset.BitSet) []string {
	out := make([]string, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, a.states[i])
	}

	return out
}

func members(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}
