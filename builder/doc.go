// SPDX-License-Identifier: MIT

// Package builder generates deterministic edge-labeled graphs for path
// query tests, benchmarks and the `lvpath gen` command.
//
// Constructors:
//
//   - LabeledCycle(n, label): 0 → 1 → … → n-1 → 0.
//   - TwoCycles(n, m, a, b): an a-cycle of n+1 vertices and a b-cycle of
//     m+1 vertices sharing vertex 0.
//   - LabeledPath(labels...): a path spelling labels.
//   - LabeledGrid(rows, cols, right, down): a grid with right and down arcs.
//   - RandomLabeled(n, p, labels...): every (pair, label) trial succeeds
//     with probability p; needs WithSeed or WithRand.
//
// Constructors are composed with BuildGraph, which starts from
// core.NewLabeledGraph and applies them in order. Vertex IDs come from an
// IDFn (decimal by default) applied to offset + local index, so two
// constructors with the same offset share vertices and WithOffset keeps
// them apart.
//
// Errors are the sentinels in errors.go, wrapped with the constructor name;
// option constructors (WithX) panic on nonsense values instead.
package builder
