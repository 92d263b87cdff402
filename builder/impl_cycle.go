// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_cycle.go: LabeledCycle(n, label) and TwoCycles(n, m, labelA, labelB).
//
// Contract:
//   • Vertices are added via cfg.id in ascending local index order.
//   • Edges are emitted in stable order i → i+1, the closing edge last.
//   • Edges are directed unless the graph was built undirected.
//
// Determinism:
//   • Same parameters and options give the same vertex and edge IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodLabeledCycle = "LabeledCycle"
	methodTwoCycles    = "TwoCycles"
	minCycleNodes      = 1
	minTwoCyclesSide   = 1
)

// LabeledCycle returns a Constructor for the cycle 0 → 1 → … → n-1 → 0 with
// every edge labeled label. n = 1 gives a single self-loop.
//
// Errors: ErrTooFewVertices (n < 1), ErrEmptyLabel.
// Complexity: O(n).
func LabeledCycle(n int, label string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLabeledCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if label == "" {
			return fmt.Errorf("%s: %w", methodLabeledCycle, ErrEmptyLabel)
		}

		ring := make([]int, n)
		for i := range ring {
			ring[i] = i
		}

		return addRing(g, cfg, methodLabeledCycle, ring, label)
	}
}

// TwoCycles returns a Constructor for two cycles sharing vertex 0: the first
// runs 0 → 1 → … → n → 0 labeled labelA, the second 0 → n+1 → … → n+m → 0
// labeled labelB. The graph has n+m+1 vertices and n+m+2 edges.
//
// This is the shape of the classic "labeled two cycles" benchmark graph, on
// which a^k b^k style queries have answers of known size.
//
// Errors: ErrTooFewVertices (n < 1 or m < 1), ErrEmptyLabel.
// Complexity: O(n + m).
func TwoCycles(n, m int, labelA, labelB string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTwoCyclesSide || m < minTwoCyclesSide {
			return fmt.Errorf("%s: n=%d, m=%d < min=%d: %w",
				methodTwoCycles, n, m, minTwoCyclesSide, ErrTooFewVertices)
		}
		if labelA == "" || labelB == "" {
			return fmt.Errorf("%s: %w", methodTwoCycles, ErrEmptyLabel)
		}

		first := make([]int, 0, n+1)
		for i := 0; i <= n; i++ {
			first = append(first, i)
		}
		second := []int{0}
		for i := n + 1; i <= n+m; i++ {
			second = append(second, i)
		}

		if err := addRing(g, cfg, methodTwoCycles, first, labelA); err != nil {
			return err
		}

		return addRing(g, cfg, methodTwoCycles, second, labelB)
	}
}

// addRing adds the vertices of ring in order, then the edges
// ring[0] → ring[1] → … → ring[len-1] → ring[0].
func addRing(g *core.Graph, cfg builderConfig, method string, ring []int, label string) error {
	for _, i := range ring {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for k, i := range ring {
		u, v := cfg.id(i), cfg.id(ring[(k+1)%len(ring)])
		if _, err := g.AddEdge(u, v, label); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", method, u, v, label, err)
		}
	}

	return nil
}
