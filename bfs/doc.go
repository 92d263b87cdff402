// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from one start
//     vertex (BFS) or from a set of start vertices seeded at depth 0 (Reach).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the nearest start
//   - Parent: map from vertex → its predecessor in the BFS forest
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Restricts traversal to chosen edge labels via WithLabels.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Single-label reachability is the one-symbol special case of a regular
//     path query and a cheap sanity check for the matrix engines.
//   - grammar uses Reach over its symbol dependency graph to find the
//     nonterminals reachable from the start symbol.
//
// Determinism
//
//	core.NeighborIDs and core.LabeledSuccessors return sorted IDs, and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Direction
//
//	Directed edges are followed only from Edge.From to Edge.To; undirected
//	edges are followed both ways. Labeled graphs built with
//	core.NewLabeledGraph are directed.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithLabels("knows"), bfs.WithMaxDepth(3))
//	res, err := bfs.Reach(g, []string{"s1", "s2"}, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if a start vertex does not exist.
//   - ErrNoSources            if Reach is given no start vertex.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth, empty label).
//   - ErrNeighbors            if the neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
