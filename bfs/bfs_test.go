// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	_ = g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// empty label filter is a violation
	if _, err := bfs.BFS(g2, "A", bfs.WithLabels("")); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("empty label: want ErrOptionViolation, got %v", err)
	}
	// no sources
	if _, err := bfs.Reach(g2, nil); !errors.Is(err, bfs.ErrNoSources) {
		t.Errorf("no sources: want ErrNoSources, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple undirected cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("B", "C", "x")
	_, _ = g.AddEdge("C", "D", "x")
	_, _ = g.AddEdge("D", "A", "x")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != "A" {
		t.Errorf("first vertex = %s; want A", res.Order[0])
	}
	// Next two must be B and D in any order
	layer1 := map[string]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1["B"] || !layer1["D"] {
		t.Errorf("depth-1 layer = %v; want {B,D}", res.Order[1:3])
	}
	if res.Order[3] != "C" {
		t.Errorf("last vertex = %s; want C", res.Order[3])
	}
	if got, want := res.Depth["C"], 2; got != want {
		t.Errorf("Depth[C] = %d; want %d", got, want)
	}
}

// TestBFS_DirectedRespectsOrientation ensures labeled graphs are walked along arcs only.
func TestBFS_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("A", "B", "a")
	_, _ = g.AddEdge("C", "B", "a")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached("C") {
		t.Error("C must not be reached against edge direction")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("B", "C", "x")
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("B", "C", "x")
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_WithLabels follows only the selected labels.
func TestBFS_WithLabels(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("0", "1", "a")
	_, _ = g.AddEdge("1", "2", "b")
	_, _ = g.AddEdge("0", "3", "c")
	_, _ = g.AddEdge("3", "4", "a")

	cases := []struct {
		labels []string
		want   []string
	}{
		{labels: []string{"a"}, want: []string{"0", "1"}},
		{labels: []string{"a", "b"}, want: []string{"0", "1", "2"}},
		{labels: []string{"c", "a"}, want: []string{"0", "1", "3", "4"}},
		{labels: []string{"z"}, want: []string{"0"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, "0", bfs.WithLabels(tc.labels...))
		if err != nil {
			t.Fatalf("labels %v: %v", tc.labels, err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("labels %v: got %v; want %v", tc.labels, res.Order, tc.want)
		}
	}
}

// TestReach_MultiSource seeds several roots at depth zero.
func TestReach_MultiSource(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("C", "D", "x")
	_, _ = g.AddEdge("D", "E", "x")
	_ = g.AddVertex("Z")

	res, err := bfs.Reach(g, []string{"C", "A", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C", "A", "D", "B", "E"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth["A"] != 0 || res.Depth["C"] != 0 || res.Depth["E"] != 2 {
		t.Errorf("unexpected depths %v", res.Depth)
	}
	if res.Reached("Z") {
		t.Error("Z is isolated and must not be reached")
	}
	if path, _ := res.PathTo("E"); !reflect.DeepEqual(path, []string{"C", "D", "E"}) {
		t.Errorf("PathTo(E) = %v", path)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("A", "A", "a")
	_, _ = g.AddEdge("A", "B", "a")
	_, _ = g.AddEdge("A", "B", "b")
	res, _ := bfs.BFS(g, "A", bfs.WithLabels("a", "b"))
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "x")
	_, _ = g.AddEdge("B", "C", "x")

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError aborts the traversal with the hook's error.
func TestBFS_OnVisitError(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "x")
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("X")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		u, v := fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)
		_, _ = g.AddEdge(u, v, "x")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "x")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
