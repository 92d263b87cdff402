// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
)

// GraphInfo summarizes a labeled graph.
type GraphInfo struct {
	Nodes int `yaml:"nodes"`
	Edges int `yaml:"edges"`
	// Labels are the distinct non-empty edge labels, sorted.
	Labels []string `yaml:"labels"`
	// Unlabeled counts edges that path queries skip.
	Unlabeled int `yaml:"unlabeled,omitempty"`
	// Components is the number of weakly connected components.
	Components int `yaml:"components"`
	// Acyclic reports whether the labeled arcs form no cycle, i.e. every
	// path query has finitely many witness paths.
	Acyclic bool `yaml:"acyclic"`
}

// Info returns node and edge counts, the label set, the weak component
// count of g and whether its arcs are acyclic.
//
// Implementation:
//   - Stage 1: Counts and labels from core.Graph.Stats and Labels.
//   - Stage 2: Copy the topology into an undirected graph and count BFS
//     trees started from unvisited vertices in sorted order.
//   - Stage 3: dfs.IsAcyclic over the labeled arcs.
//
// Complexity: O(V + E).
func Info(g *core.Graph) (GraphInfo, error) {
	if g == nil {
		return GraphInfo{}, ErrGraphNil
	}
	st := g.Stats()
	info := GraphInfo{
		Nodes:     st.VertexCount,
		Edges:     st.EdgeCount,
		Labels:    g.Labels(),
		Unlabeled: st.UnlabeledEdgeCount,
	}

	und := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, v := range g.Vertices() {
		if err := und.AddVertex(v); err != nil {
			return GraphInfo{}, err
		}
	}
	for _, e := range g.Edges() {
		if _, err := und.AddEdge(e.From, e.To, e.Label); err != nil {
			return GraphInfo{}, err
		}
	}

	seen := make(map[string]bool, st.VertexCount)
	for _, v := range und.Vertices() {
		if seen[v] {
			continue
		}
		res, err := bfs.BFS(und, v)
		if err != nil {
			return GraphInfo{}, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		info.Components++
	}

	acyclic, err := dfs.IsAcyclic(g)
	if err != nil {
		return GraphInfo{}, err
	}
	info.Acyclic = acyclic

	return info, nil
}

// String renders the summary as aligned "key: value" lines.
func (i GraphInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes:      %d\n", i.Nodes)
	fmt.Fprintf(&sb, "edges:      %d\n", i.Edges)
	fmt.Fprintf(&sb, "labels:     %s\n", strings.Join(i.Labels, ", "))
	if i.Unlabeled > 0 {
		fmt.Fprintf(&sb, "unlabeled:  %d\n", i.Unlabeled)
	}
	fmt.Fprintf(&sb, "components: %d\n", i.Components)
	if i.Acyclic {
		sb.WriteString("acyclic:    yes\n")
	} else {
		sb.WriteString("acyclic:    no\n")
	}

	return sb.String()
}
