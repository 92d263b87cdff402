// SPDX-License-Identifier: MIT

// File: topological.go
// Role: TopologicalSort over labeled arcs.
// Determinism:
//   - Roots are tried in sorted vertex order and successors in sorted order,
//     so equal graphs give equal orders.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	succ  map[string][]string
	opts  DFSOptions
	state map[string]int
	order []string
}

// TopologicalSort orders the vertices of g so that every arc u→v has u
// before v. Only WithContext and WithLabels apply; other options are ignored.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - ErrCycleDetected (wrapped with a vertex on the cycle) if any arc
//     closes a cycle, including self-loops and undirected edges.
//   - ctx.Err() on cancellation.
//
// Complexity: O(V + E log E).
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	verts := g.Vertices()
	t := &topoSorter{
		succ:  successors(g, o.Labels),
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order.
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// IsAcyclic reports whether the arc graph of g (restricted by WithLabels)
// has no cycle.
func IsAcyclic(g *core.Graph, opts ...Option) (bool, error) {
	_, err := TopologicalSort(g, opts...)
	switch {
	case err == nil:
		return true, nil
	case isCycle(err):
		return false, nil
	default:
		return false, err
	}
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: through %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	for _, nid := range t.succ[id] {
		if err := t.visit(nid); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
