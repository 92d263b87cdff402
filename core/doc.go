// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory edge-labeled Graph, the data
// model every path query in lvpath runs on.
//
// The Graph G = (V,E) supports:
//
//   - A label per edge (the symbol a regular or context-free path query reads)
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - A label index byLabel[label][edgeID] for per-symbol extraction
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// NewLabeledGraph returns the configuration path queries expect: directed,
// multi-edges and loops enabled. Two parallel edges u→v with different labels
// are the normal case, not an error.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to, label string, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	RemoveEdge(edgeID string) error                                                // O(1)
//	HasEdge(from, to string) bool                                                  // O(1)
//	HasLabeledEdge(from, to, label string) bool                                    // O(k)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)             // O(d·log d)
//	NeighborIDs(id string) ([]string, error)          // O(d·log d), unique, sorted
//	LabeledSuccessors(id, label string) ([]string, error)
//	Vertices() []string                               // O(V·log V)
//	Edges() []*Edge                                   // O(E·log E)
//	EdgesByLabel(label string) []*Edge                // O(k·log k)
//	Labels() []string                                 // distinct labels, sorted
//	Arcs() []Arc                                      // traversable (from, label, to) steps
//
//	// Views and cloning
//	Clone(), CloneEmpty(), InducedSubgraph(g, keep), LabelView(g, labels...)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
