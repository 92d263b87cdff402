// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random.go - RandomLabeled(n, p, labels) constructor.
//
// Model:
//   - For every ordered pair (i, j), self-pairs included when the graph
//     allows loops, and for every label l in the given order, the edge
//     i -l-> j is added with probability p. Undirected graphs consider only
//     i ≤ j.
//
// Determinism:
//   - Trials run in the order i asc, j asc, labels in the order given, one
//     rng.Float64() per trial, so a seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandomLabeled      = "RandomLabeled"
	minRandomLabeledVertices = 1
	probMin                  = 0.0
	probMax                  = 1.0
)

// RandomLabeled returns a Constructor sampling an Erdős–Rényi-like
// edge-labeled graph over n vertices.
//
// Errors:
//   - ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
//     ErrEmptyLabel (no labels or an empty one), ErrNeedRandSource.
//
// Complexity: O(n² · |labels|) trials.
func RandomLabeled(n int, p float64, labels ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomLabeledVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomLabeled, n, minRandomLabeledVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomLabeled, p, probMin, probMax, ErrInvalidProbability)
		}
		if len(labels) == 0 {
			return fmt.Errorf("%s: no labels: %w", methodRandomLabeled, ErrEmptyLabel)
		}
		for i, l := range labels {
			if l == "" {
				return fmt.Errorf("%s: label %d: %w", methodRandomLabeled, i, ErrEmptyLabel)
			}
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomLabeled, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.id(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomLabeled, id, err)
			}
		}

		loops, directed := g.Looped(), g.Directed()
		for i := 0; i < n; i++ {
			u := cfg.id(i)
			j0 := 0
			if !directed {
				j0 = i
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				v := cfg.id(j)
				for _, l := range labels {
					if cfg.rng.Float64() >= p {
						continue
					}
					if _, err := g.AddEdge(u, v, l); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", methodRandomLabeled, u, v, l, err)
					}
				}
			}
		}

		return nil
	}
}
