// SPDX-License-Identifier: MIT

// File: hellings.go
// Role: CFPQ by Hellings' worklist algorithm over (nonterminal, from, to) triples.

package cfpq

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/query"
)

// triple states that nonterminal n derives a path from node u to node v.
type triple struct {
	n, u, v int
}

// hellings holds the relation R and its join indexes.
type hellings struct {
	rel    map[triple]struct{}
	byFrom map[int][]triple // u → triples (·, u, ·)
	byTo   map[int][]triple // v → triples (·, ·, v)
	binary map[[2]int][]int // (B, C) → heads H of H → B C
	work   *linkedlistqueue.Queue
}

// Hellings answers the context-free path query cfg over g with Hellings'
// algorithm.
//
// Implementation:
//   - Stage 1: Normalize cfg to weak CNF.
//   - Stage 2: Seed R with (N, v, v) for every node v and nullable N, and
//     with (H, u, v) for every H → a and arc u -a-> v.
//   - Stage 3: Worklist: for each new (N, u, v), join with (M, v, w) on the
//     right and (M, x, u) on the left through binary productions; every
//     triple not yet in R joins R and the worklist. One round drains the
//     triples queued by the previous round.
//   - Stage 4: Answers are (u, v) with (Start, u, v) ∈ R, filtered by start/final nodes.
//
// Errors:
//   - query.ErrGraphNil, query.ErrPatternNil, grammar.ErrNoStart;
//     ctx.Err() between rounds; query.ErrRoundLimit.
//
// Complexity: O(|N|³ · |V|³) worst case.
func Hellings(ctx context.Context, cfg *grammar.CFG, g *core.Graph, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "cfpq.hellings", o)

	w, err := weakCNF(cfg, g)
	if err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := runHellings(ctx, run, w, g, o)

	return res, run.End(ctx, res, err)
}

func runHellings(ctx context.Context, run *query.Run, w *grammar.CFG, g *core.Graph, o query.Options) (query.Result, error) {
	ix := indexGraph(g)
	nts := w.Nonterminals()
	ntIndex := make(map[string]int, len(nts))
	for i, n := range nts {
		ntIndex[n] = i
	}

	h := &hellings{
		rel:    make(map[triple]struct{}),
		byFrom: make(map[int][]triple),
		byTo:   make(map[int][]triple),
		binary: make(map[[2]int][]int),
		work:   linkedlistqueue.New(),
	}
	for _, p := range w.Productions {
		if p.IsBinary() {
			key := [2]int{ntIndex[p.Body[0].Name], ntIndex[p.Body[1].Name]}
			h.binary[key] = append(h.binary[key], ntIndex[p.Head])
		}
	}

	for _, n := range epsilonHeads(w) {
		for v := range ix.nodes {
			h.add(triple{ntIndex[n], v, v})
		}
	}
	heads := terminalHeads(w)
	for _, a := range ix.arcs {
		for _, n := range heads[a.Label] {
			h.add(triple{ntIndex[n], ix.index[a.From], ix.index[a.To]})
		}
	}

	for !h.work.Empty() {
		if err := run.NextRound(ctx); err != nil {
			return query.Result{}, err
		}
		added := 0
		for pending := h.work.Size(); pending > 0; pending-- {
			v, _ := h.work.Dequeue()
			added += h.join(v.(triple))
		}
		run.RoundDone(ctx, added, len(h.rel))
	}

	start, ok := ntIndex[w.Start]
	if !ok {
		return query.Result{}, nil
	}

	return collect(ix, o, g, func(fn func(i, j int)) {
		for t := range h.rel {
			if t.n == start {
				fn(t.u, t.v)
			}
		}
	}), nil
}

// add inserts t into R and the worklist; it reports whether t was new.
func (h *hellings) add(t triple) bool {
	if _, ok := h.rel[t]; ok {
		return false
	}
	h.rel[t] = struct{}{}
	h.byFrom[t.u] = append(h.byFrom[t.u], t)
	h.byTo[t.v] = append(h.byTo[t.v], t)
	h.work.Enqueue(t)

	return true
}

// join combines t with every adjacent triple and returns the number of new triples.
func (h *hellings) join(t triple) int {
	added := 0
	// (t.n, u, v) · (m, v, x) ⇒ (H, u, x)
	for _, r := range h.byFrom[t.v] {
		for _, head := range h.binary[[2]int{t.n, r.n}] {
			if h.add(triple{head, t.u, r.v}) {
				added++
			}
		}
	}
	// (m, x, u) · (t.n, u, v) ⇒ (H, x, v)
	for _, l := range h.byTo[t.u] {
		for _, head := range h.binary[[2]int{l.n, t.n}] {
			if h.add(triple{head, l.u, t.v}) {
				added++
			}
		}
	}

	return added
}
