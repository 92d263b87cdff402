// SPDX-License-Identifier: MIT

package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for automaton construction.
var (
	// ErrUnknownState indicates a start, final or transition endpoint that is not among NFA.States.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrDuplicateState indicates that NFA.States lists the same state twice.
	ErrDuplicateState = errors.New("automaton: duplicate state")

	// ErrEmptySymbol indicates a transition with an empty symbol.
	ErrEmptySymbol = errors.New("automaton: empty transition symbol")

	// ErrNilAutomaton indicates a nil *Automaton operand.
	ErrNilAutomaton = errors.New("automaton: nil automaton")

	// ErrNilGraph indicates a nil *core.Graph passed to FromGraph.
	ErrNilGraph = errors.New("automaton: graph is nil")
)

func automatonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
