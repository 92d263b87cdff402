// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: CloneEmpty / Clone / Clear.
// AI-HINT (file):
//   - Clones carry nextEdgeID so that AddEdge on a clone never reuses a source ID.
//   - cfpq works on a Clone when it must not mutate the caller's graph.

package core

import "sync/atomic"

// options reconstructs the GraphOption list that reproduces g's flags.
// Caller must hold muVert (read or write).
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// CloneEmpty returns a new Graph with the same flags and vertices but no edges.
// Vertex Metadata maps are shared, not deep-copied.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of vertices, edges, adjacency and the label index.
// Edge IDs, labels and directedness are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Label: e.Label, Directed: e.Directed}
		clone.edges[eid] = ne
		linkEdge(clone, ne)
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID sequence.
// Configuration flags remain unchanged.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.byLabel = make(map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
