// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/matrix/ops"
)

func TestWarshall_Chain(t *testing.T) {
	for _, f := range []matrix.Format{matrix.FormatDense, matrix.FormatSparse} {
		m := matrix.New(matrix.Config{Format: f}, 4, 4)
		m.Set(0, 1)
		m.Set(1, 2)
		m.Set(2, 3)

		require.NoError(t, ops.Warshall(m, false))
		require.Equal(t, 6, m.Nonzero())
		require.True(t, m.At(0, 3))
		require.False(t, m.At(3, 0))
		require.False(t, m.At(0, 0))

		require.NoError(t, ops.Warshall(m, true))
		require.Equal(t, 10, m.Nonzero())
	}
}

func TestWarshall_Cycle(t *testing.T) {
	m := matrix.New(matrix.NewConfig(), 3, 3)
	m.Set(0, 1)
	m.Set(1, 2)
	m.Set(2, 0)
	require.NoError(t, ops.Warshall(m, false))
	require.Equal(t, 9, m.Nonzero())
}

func TestWarshall_NonSquare(t *testing.T) {
	err := ops.Warshall(matrix.New(matrix.NewConfig(), 2, 3), false)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
