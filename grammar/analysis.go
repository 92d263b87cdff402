// SPDX-License-Identifier: MIT

// File: analysis.go
// Role: nullable, generating and reachable symbol sets; useless-symbol removal.

package grammar

import (
	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// derivesLabel labels the edges of the symbol dependency graph.
const derivesLabel = "derives"

// Nullable returns the nonterminals that derive the empty word.
//
// Implementation:
//   - Fixpoint: A is nullable once some production A → X1..Xn has every Xi
//     a nullable nonterminal (n = 0 included). Each pass that changes
//     nothing ends the loop; at most |N|+1 passes run.
//
// Complexity: O(|N| · |P| · max|body|).
func (g *CFG) Nullable() map[string]bool {
	return g.fixpoint(func(s Symbol, set map[string]bool) bool {
		return !s.Terminal && set[s.Name]
	})
}

// Generating returns the nonterminals that derive at least one terminal word.
// Complexity: O(|N| · |P| · max|body|).
func (g *CFG) Generating() map[string]bool {
	return g.fixpoint(func(s Symbol, set map[string]bool) bool {
		return s.Terminal || set[s.Name]
	})
}

// fixpoint grows a head set: a production joins its head to the set when
// every body symbol satisfies ok.
func (g *CFG) fixpoint(ok func(Symbol, map[string]bool) bool) map[string]bool {
	set := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if set[p.Head] {
				continue
			}
			all := true
			for _, s := range p.Body {
				if !ok(s, set) {
					all = false
					break
				}
			}
			if all {
				set[p.Head] = true
				changed = true
			}
		}
	}

	return set
}

// Reachable returns the nonterminals reachable from Start through production
// bodies, Start included. A grammar without a start symbol reaches nothing.
//
// Implementation:
//   - Stage 1: Build a dependency graph with an edge Head → B for every
//     nonterminal B in a body of Head.
//   - Stage 2: bfs.Reach from Start.
func (g *CFG) Reachable() map[string]bool {
	out := make(map[string]bool)
	if g.Start == "" {
		return out
	}

	dep := g.dependencyGraph()
	res, err := bfs.Reach(dep, []string{g.Start}, bfs.WithLabels(derivesLabel))
	if err != nil {
		// Start is always a vertex of dep, so Reach cannot fail.
		out[g.Start] = true
		return out
	}
	for _, id := range res.Order {
		out[id] = true
	}

	return out
}

// dependencyGraph returns the directed symbol dependency graph of g.
func (g *CFG) dependencyGraph() *core.Graph {
	dep := core.NewLabeledGraph()
	_ = dep.AddVertex(g.Start)
	for _, p := range g.Productions {
		_ = dep.AddVertex(p.Head)
		for _, s := range p.Body {
			if !s.Terminal && !dep.HasLabeledEdge(p.Head, s.Name, derivesLabel) {
				_, _ = dep.AddEdge(p.Head, s.Name, derivesLabel)
			}
		}
	}

	return dep
}

// RemoveUseless returns a grammar without non-generating and unreachable
// nonterminals. Order of the surviving productions is preserved.
//
// Implementation:
//   - Stage 1: Drop productions mentioning a non-generating nonterminal.
//   - Stage 2: Drop productions whose head is unreachable in the result.
//
// The order matters: removing non-generating symbols can make others unreachable.
func (g *CFG) RemoveUseless() *CFG {
	gen := g.Generating()
	stage1 := &CFG{Start: g.Start}
	for _, p := range g.Productions {
		if !gen[p.Head] {
			continue
		}
		keep := true
		for _, s := range p.Body {
			if !s.Terminal && !gen[s.Name] {
				keep = false
				break
			}
		}
		if keep {
			stage1.Productions = append(stage1.Productions, p)
		}
	}

	reach := stage1.Reachable()
	out := &CFG{Start: g.Start}
	for _, p := range stage1.Productions {
		if reach[p.Head] {
			out.Productions = append(out.Productions, p)
		}
	}
	out.Productions = dedup(out.Productions)

	return out
}
