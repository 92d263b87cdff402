// SPDX-License-Identifier: MIT

// File: cycle.go
// Role: DetectCycles over labeled arcs.
// Determinism:
//   - Each cycle is rotated to start at its lexicographically minimal
//     rotation and the list is sorted by signature.

package dfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvpath/core"
)

// DetectCycles reports the cycles of the arc graph of g that DFS closes
// with a back arc. Every cyclic graph yields at least one cycle, but not
// every simple cycle is listed: cycles that share all their back arcs with
// an already recorded one are not enumerated separately.
//
// Each cycle is closed, [v0, v1, ..., v0], and starts at its minimal
// rotation. A self-loop arc gives [v, v]; an undirected edge gives [u, v, u].
// WithContext and WithLabels apply.
//
// Returns (false, nil, nil) for an acyclic graph.
//
// Complexity: O(V + E log E + C·L).
func DetectCycles(g *core.Graph, opts ...Option) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return false, nil, err
	}

	c := &cycleFinder{
		succ:  successors(g, o.Labels),
		opts:  o,
		state: make(map[string]int, g.VertexCount()),
		seen:  make(map[string]struct{}),
	}
	for _, v := range g.Vertices() {
		if c.state[v] == White {
			if err := c.visit(v); err != nil {
				return false, nil, err
			}
		}
	}

	sort.Slice(c.cycles, func(i, j int) bool {
		return JoinSig(c.cycles[i]) < JoinSig(c.cycles[j])
	})
	if len(c.cycles) == 0 {
		return false, nil, nil
	}

	return true, c.cycles, nil
}

type cycleFinder struct {
	succ   map[string][]string
	opts   DFSOptions
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

func (c *cycleFinder) visit(id string) error {
	select {
	case <-c.opts.Ctx.Done():
		return c.opts.Ctx.Err()
	default:
	}
	c.state[id] = Gray
	c.path = append(c.path, id)

	for _, nbr := range c.succ[id] {
		switch c.state[nbr] {
		case White:
			if err := c.visit(nbr); err != nil {
				return err
			}
		case Gray:
			c.record(nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black

	return nil
}

// record stores the cycle running from start to the top of the path.
func (c *cycleFinder) record(start string) {
	idx := IndexOf(c.path, start)
	rot := MinimalRotation(c.path[idx:])
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, dup := c.seen[sig]; dup {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, closed)
}

func isCycle(err error) bool { return errors.Is(err, ErrCycleDetected) }
