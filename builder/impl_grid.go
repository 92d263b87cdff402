// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go: LabeledGrid(rows, cols, right, down).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const methodLabeledGrid = "LabeledGrid"

// LabeledGrid returns a Constructor for a rows×cols grid whose cell (r, c)
// has index r*cols + c. Each cell links to its right neighbor with label
// right and to the cell below with label down, so a path from the top-left
// to cell (r, c) spells an interleaving of c rights and r downs.
//
// Errors: ErrTooFewVertices (rows or cols < 1), ErrEmptyLabel.
// Complexity: O(rows·cols).
func LabeledGrid(rows, cols int, right, down string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodLabeledGrid, rows, cols, ErrTooFewVertices)
		}
		if right == "" || down == "" {
			return fmt.Errorf("%s: %w", methodLabeledGrid, ErrEmptyLabel)
		}

		cell := func(r, c int) string { return cfg.id(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(cell(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodLabeledGrid, cell(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddEdge(cell(r, c), cell(r, c+1), right); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodLabeledGrid, cell(r, c), cell(r, c+1), err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(cell(r, c), cell(r+1, c), down); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodLabeledGrid, cell(r, c), cell(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
