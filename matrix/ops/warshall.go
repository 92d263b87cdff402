// SPDX-License-Identifier: MIT

// Package ops provides whole-matrix algorithms on top of matrix.Bool.
// warshall.go implements Warshall's transitive closure, the boolean form of
// Floyd–Warshall: reach[i][j] |= reach[i][k] ∧ reach[k][j] for every pivot k.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lvpath/matrix"
)

// Warshall computes the transitive closure of m in place. m must be square.
// With reflexive set, every diagonal entry is set as well, giving the
// reflexive-transitive closure I ∪ m⁺.
//
// Implementation:
//   - Stage 1: Validate shape.
//   - Stage 2: For each pivot k, every row i that reaches k absorbs row k.
//
// Complexity: O(n³) time worst case, O(n) extra memory per pivot row.
//
// AI-Hints:
//   - automaton.TransitiveClosure uses repeated multiplication instead; this
//     cubic pivot loop is the independent reference both are checked against.
func Warshall(m matrix.Bool, reflexive bool) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("Warshall: %w", err)
	}
	n := m.Rows()

	if reflexive {
		if err := matrix.SetDiagonal(m); err != nil {
			return fmt.Errorf("Warshall: %w", err)
		}
	}

	var (
		i, k  int
		pivot []int
	)
	for k = 0; k < n; k++ {
		pivot = m.Row(k)
		if len(pivot) == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			if !m.At(i, k) {
				continue
			}
			for _, j := range pivot {
				m.Set(i, j)
			}
		}
	}

	return nil
}
