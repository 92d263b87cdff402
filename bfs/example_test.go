// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 undirected grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), "road")
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), "road")
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleWithLabels walks only the "knows" edges of a small social graph.
func ExampleWithLabels() {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("alice", "bob", "knows")
	_, _ = g.AddEdge("bob", "carol", "knows")
	_, _ = g.AddEdge("alice", "acme", "works_at")
	_, _ = g.AddEdge("acme", "dave", "employs")

	res, err := bfs.BFS(g, "alice", bfs.WithLabels("knows"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("carol")
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [alice bob carol]
	// [alice bob carol]
}

// ExampleBFS_filterAndMixed demonstrates filtering and mixed-edge handling.
// U–V is undirected, V→W directed, W–X undirected, X→Y directed.
func ExampleBFS_filterAndMixed() {
	g := core.NewGraph(core.WithMixedEdges())
	_, _ = g.AddEdge("U", "V", "l", core.WithEdgeDirected(false))
	_, _ = g.AddEdge("V", "W", "l", core.WithEdgeDirected(true))
	_, _ = g.AddEdge("W", "X", "l", core.WithEdgeDirected(false))
	_, _ = g.AddEdge("X", "Y", "l", core.WithEdgeDirected(true))

	filter := func(curr, nbr string) bool {
		return !(curr == "X" && nbr == "W")
	}

	res, err := bfs.BFS(g, "U", bfs.WithFilterNeighbor(filter))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [U V W X Y]
}

// ExampleReach seeds two roots and reports the depth of every reached vertex.
func ExampleReach() {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("s1", "m", "a")
	_, _ = g.AddEdge("s2", "n", "a")
	_, _ = g.AddEdge("n", "t", "b")

	res, err := bfs.Reach(g, []string{"s1", "s2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Printf("%s@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output:
	// s1@0 s2@0 m@1 n@1 t@2
}
