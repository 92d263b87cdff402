// SPDX-License-Identifier: MIT

package query

import "errors"

var (
	// ErrGraphNil is returned when a query is given a nil graph.
	ErrGraphNil = errors.New("query: graph is nil")

	// ErrPatternNil is returned when a query is given a nil grammar, RSM or automaton.
	ErrPatternNil = errors.New("query: pattern is nil")

	// ErrRoundLimit is returned when a fixpoint exceeds WithMaxRounds. The
	// fixpoints terminate on their own, so hitting the limit means either a
	// deliberately small limit or a defect.
	ErrRoundLimit = errors.New("query: fixpoint round limit exceeded")
)
