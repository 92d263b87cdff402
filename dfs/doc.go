// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort over the traversable labeled arcs of a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor and label filtering
//   - Forest traversal over every vertex
//   - DetectCycles: lists the cycles closed by back arcs, using vertex
//     coloring (White, Gray, Black) and canonical rotation signatures.
//   - TopologicalSort: orders the vertices of an acyclic arc graph,
//     returning ErrCycleDetected otherwise.
//
// Arcs:
//
//	Traversal follows core.Graph.Arcs: unlabeled edges are never followed,
//	and an undirected edge contributes one arc per direction, so it closes
//	a 2-cycle. This is the graph a path query walks: an acyclic arc graph
//	has finitely many labeled paths.
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle found by TopologicalSort
//   - ErrOptionViolation      invalid option value
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
