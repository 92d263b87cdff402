// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       label queries (HasLabeledEdge/EdgesByLabel/Labels/Arcs) and filtered removals.
// Determinism:
//   - Edges(), EdgesByLabel() return edges sorted by Edge.ID asc.
//   - Labels() returns distinct labels sorted lex asc.
//   - Arcs() returns traversable arcs sorted by (From, Label, To).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Per-edge directedness overrides (WithEdgeDirected) require WithMixedEdges().
//   - An undirected edge yields two arcs in Arcs(); a path query may walk it either way.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// Arc is one traversable step of a labeled graph: From --Label--> To.
// Undirected edges contribute one Arc per direction.
type Arc struct {
	From  string
	To    string
	Label string
}

// AddEdge creates a new edge labeled label, optionally directed in a mixed graph.
//
// AI-HINT:
//   - If MixedEdges()==false and opts override directedness, this returns ErrMixedEdgesNotAllowed.
//   - If Looped()==false and from==to, this returns ErrLoopNotAllowed.
//   - If Multigraph()==false and (from,to) already has an edge, this returns ErrMultiEdgeNotAllowed.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Build Edge with the graph default directedness, apply opts, reject overrides outside mixed mode.
//  5. Store in g.edges, the adjacency list and the label index.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
// Concurrency:
//   - Vertices are created outside muEdgeAdj; adjacency and catalogs under muEdgeAdj.
func (g *Graph) AddEdge(from, to, label string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	e := &Edge{From: from, To: to, Label: label, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge, its mirror and its label index entry.
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases.
// Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	unindexLabel(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists, whatever its label.
// Undirected edges are mirrored in adjacency, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// HasLabeledEdge reports whether an edge from→to carrying label exists.
// Complexity: O(k) where k is the number of parallel edges from→to.
func (g *Graph) HasLabeledEdge(from, to, label string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacencyList[from][to] {
		if g.edges[eid].Label == label {
			return true
		}
	}

	return false
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgesByLabel returns every edge carrying label, sorted by Edge.ID asc.
// Unknown labels yield an empty slice.
// Complexity: O(k log k) where k is the number of edges with that label.
func (g *Graph) EdgesByLabel(label string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := g.byLabel[label]
	out := make([]*Edge, 0, len(ids))
	for eid := range ids {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Labels returns the distinct non-empty edge labels, sorted lex asc.
// Complexity: O(L log L).
func (g *Graph) Labels() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.byLabel))
	for label := range g.byLabel {
		if label != "" {
			out = append(out, label)
		}
	}
	sort.Strings(out)

	return out
}

// Arcs returns every traversable labeled step of the graph.
//
// Implementation:
//   - Stage 1: Snapshot the edge catalog under the read lock.
//   - Stage 2: Emit From→To for every edge and To→From for undirected non-loop edges.
//   - Stage 3: Drop unlabeled edges, deduplicate, sort by (From, Label, To).
//
// Complexity: O(E log E).
//
// AI-Hints:
//   - This is the view automaton.FromGraph and the labeled BFS consume.
func (g *Graph) Arcs() []Arc {
	g.muEdgeAdj.RLock()
	seen := make(map[Arc]struct{}, len(g.edges))
	for _, e := range g.edges {
		if e.Label == "" {
			continue
		}
		seen[Arc{From: e.From, To: e.To, Label: e.Label}] = struct{}{}
		if !e.Directed && e.From != e.To {
			seen[Arc{From: e.To, To: e.From, Label: e.Label}] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	out := make([]Arc, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}

		return out[i].To < out[j].To
	})

	return out
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph.
// Complexity: O(E) scan + O(V+E) cleanup in worst case.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			unindexLabel(g, e)
			delete(g.edges, eid)
		}
	}

	cleanupAdjacency(g)
}

// sortEdges orders edges by the numeric part of their ID so that "e10" follows "e9".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i].ID, es[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
