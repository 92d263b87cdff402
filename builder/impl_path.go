// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go: LabeledPath(labels...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const methodLabeledPath = "LabeledPath"

// LabeledPath returns a Constructor for the path 0 → 1 → … → k whose i-th
// edge carries labels[i], so the path spells the word labels.
//
// Errors: ErrTooFewVertices (no labels), ErrEmptyLabel.
// Complexity: O(k).
func LabeledPath(labels ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(labels) == 0 {
			return fmt.Errorf("%s: no labels: %w", methodLabeledPath, ErrTooFewVertices)
		}
		for i, l := range labels {
			if l == "" {
				return fmt.Errorf("%s: label %d: %w", methodLabeledPath, i, ErrEmptyLabel)
			}
		}

		for i := 0; i <= len(labels); i++ {
			id := cfg.id(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodLabeledPath, id, err)
			}
		}
		for i, l := range labels {
			u, v := cfg.id(i), cfg.id(i+1)
			if _, err := g.AddEdge(u, v, l); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %q): %w", methodLabeledPath, u, v, l, err)
			}
		}

		return nil
	}
}
