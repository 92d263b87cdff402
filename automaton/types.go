// SPDX-License-Identifier: MIT

// File: types.go
// Role: automaton description (NFA, Transition), product-state Pair and the
//       matrix-backed Automaton itself.
// AI-HINT (file):
//   - Index assignment is private to one Automaton; never reuse an index from
//     one instance in another except through the documented product formula.

package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvpath/matrix"
)

// Symbol is an edge or transition label.
type Symbol = string

// Transition is one labeled move From --Symbol--> To.
type Transition struct {
	From   string
	Symbol Symbol
	To     string
}

// NFA describes an epsilon-free finite automaton by state names.
// regex.DFA, grammar.RSM and graphs all convert into this shape.
type NFA struct {
	// States lists every state once; its order fixes the dense index.
	States []string
	// Start and Final are subsets of States.
	Start []string
	Final []string
	// Transitions may repeat; duplicates collapse into one matrix entry.
	Transitions []Transition
}

// Pair names a product state: Left from the first operand, Right from the second.
type Pair struct {
	Left  string
	Right string
}

// String renders the pair as "(left, right)".
func (p Pair) String() string { return fmt.Sprintf("(%s, %s)", p.Left, p.Right) }

// Automaton is an adjacency-matrix automaton: states 0..n-1, one n×n boolean
// matrix per symbol, and start/final subsets kept as bitsets over the index.
//
// An Automaton is read-only after construction; SummaryGraph is the one
// mutable wrapper.
type Automaton struct {
	cfg      matrix.Config
	states   []string
	index    map[string]int
	start    *bitset.BitSet
	final    *bitset.BitSet
	matrices map[Symbol]matrix.Bool

	// pairs is set on product automata only: pairs[i] names state i.
	pairs []Pair
}
