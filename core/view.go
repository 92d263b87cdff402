// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating views: InducedSubgraph and LabelView.
// AI-HINT (file):
//   - Views copy; mutating a view never touches the source graph.
//   - Both carry the source edge ID counter forward.

package core

import "sync/atomic"

// InducedSubgraph returns the subgraph on the vertices in keep, with every edge
// whose endpoints are both kept. Flags, edge IDs and labels are preserved.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return project(g,
		func(id string) bool { return keep[id] },
		func(e *Edge) bool { return keep[e.From] && keep[e.To] })
}

// LabelView returns a graph with all vertices of g and only the edges whose
// label is in labels. An empty label set yields the edgeless graph.
// Complexity: O(V + E).
//
// AI-Hints:
//   - Restricting a data graph to a query's alphabet before building matrices
//     keeps the per-symbol matrix map small.
func LabelView(g *Graph, labels ...string) *Graph {
	allowed := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		allowed[l] = struct{}{}
	}

	return project(g,
		func(string) bool { return true },
		func(e *Edge) bool {
			_, ok := allowed[e.Label]
			return ok
		})
}

func project(g *Graph, keepVertex func(string) bool, keepEdge func(*Edge) bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		if keepVertex(id) {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keepEdge(e) {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Label: e.Label, Directed: e.Directed}
		out.edges[eid] = ne
		linkEdge(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
