// SPDX-License-Identifier: MIT

// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a labeled multigraph are safe and every label is indexed.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewLabeledGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), fmt.Sprintf("l%d", id%4))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Len(t, g.Labels(), 4)
	require.Len(t, g.EdgesByLabel("l0"), num/4)
}

// TestConcurrentReadersDuringWrites mixes Arcs/Stats readers with writers.
func TestConcurrentReadersDuringWrites(t *testing.T) {
	g := core.NewLabeledGraph()
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), "a")
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Arcs()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
	require.Len(t, g.Arcs(), rounds)
}
