// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ExampleNewLabeledGraph builds a tiny labeled multigraph and inspects it.
func ExampleNewLabeledGraph() {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("0", "1", "a")
	_, _ = g.AddEdge("0", "1", "b")
	_, _ = g.AddEdge("1", "2", "a")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Labels:", g.Labels())
	fmt.Println("0-b->1?", g.HasLabeledEdge("0", "1", "b"))
	fmt.Println("1-b->2?", g.HasLabeledEdge("1", "2", "b"))

	// Output:
	// Vertices: [0 1 2]
	// Labels: [a b]
	// 0-b->1? true
	// 1-b->2? false
}

// ExampleGraph_Arcs shows how undirected edges expand into two arcs.
func ExampleGraph_Arcs() {
	g := core.NewMixedGraph(core.WithDirected(true))
	_, _ = g.AddEdge("u", "v", "knows", core.WithEdgeDirected(false))

	for _, a := range g.Arcs() {
		fmt.Printf("%s -%s-> %s\n", a.From, a.Label, a.To)
	}

	// Output:
	// u -knows-> v
	// v -knows-> u
}
