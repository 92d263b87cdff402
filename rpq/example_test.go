// SPDX-License-Identifier: MIT
package rpq_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/query"
	"github.com/katalvlaran/lvpath/rpq"
)

func ExampleTensor() {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("0", "1", "a")
	_, _ = g.AddEdge("1", "1", "a")
	_, _ = g.AddEdge("1", "2", "b")

	res, err := rpq.Tensor(context.Background(), "a*b", g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(res)
	// Output:
	// 0	2
	// 1	2
}

func ExampleMultiSource() {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("alice", "bob", "knows")
	_, _ = g.AddEdge("bob", "carol", "knows")
	_, _ = g.AddEdge("carol", "acme", "works_at")

	res, err := rpq.MultiSource(context.Background(), "knows+ works_at", g,
		query.WithStartNodes("alice", "bob"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Pairs() {
		fmt.Println(p.From, "->", p.To)
	}
	// Output:
	// alice -> acme
	// bob -> acme
}
