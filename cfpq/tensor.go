// SPDX-License-Identifier: MIT

// File: tensor.go
// Role: CFPQ by RSM × graph intersection with summary edges.
// AI-HINT (file):
//   - The graph automaton is copied into an automaton.SummaryGraph; the
//     caller's graph and every Automaton handed out stay read-only.

package cfpq

import (
	"context"

	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/query"
)

// Tensor answers the context-free path query given by rsm over g.
//
// Implementation:
//   - Stage 1: Build the RSM automaton (all boxes flattened) and a summary
//     graph over the graph automaton with a matrix for every box label.
//   - Stage 2: Round: P = Intersect(RSM, summary); C = closure(P). For every
//     C[(box start of L, u), (box final of L, v)] add the summary edge
//     u -L-> v. Repeat until a round adds no edge.
//   - Stage 3: Answers are the Initial-labeled summary edges, filtered by
//     start/final nodes.
//
// Termination: summary edges only accumulate and are bounded by
// |V|²·|boxes|, so at most that many changing rounds run.
//
// Errors:
//   - query.ErrGraphNil, query.ErrPatternNil; ctx.Err() between rounds;
//     query.ErrRoundLimit.
func Tensor(ctx context.Context, rsm *grammar.RSM, g *core.Graph, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "cfpq.tensor", o)

	res, err := runTensor(ctx, run, rsm, g, o)

	return res, run.End(ctx, res, err)
}

func runTensor(ctx context.Context, run *query.Run, rsm *grammar.RSM, g *core.Graph, o query.Options) (query.Result, error) {
	switch {
	case g == nil:
		return query.Result{}, query.ErrGraphNil
	case rsm == nil:
		return query.Result{}, query.ErrPatternNil
	}

	cfg := o.MatrixConfig()
	boxes, err := automaton.Build(rsm.NFA(), cfg)
	if err != nil {
		return query.Result{}, err
	}
	base, err := automaton.FromGraph(g, nil, nil, cfg)
	if err != nil {
		return query.Result{}, err
	}
	sg, err := automaton.NewSummaryGraph(base)
	if err != nil {
		return query.Result{}, err
	}
	for _, l := range rsm.Labels() {
		sg.EnsureSymbol(l)
	}

	states := rsm.States()
	var calls []int
	for i, s := range states {
		if rsm.IsBoxStart(s) {
			calls = append(calls, i)
		}
	}
	nG := base.NumStates()
	ctxOnly := func(ctx context.Context) error { return ctx.Err() }

	for {
		if err := run.NextRound(ctx); err != nil {
			return query.Result{}, err
		}
		product, err := automaton.IntersectContext(ctx, boxes, sg.Automaton(), o.Parallelism)
		if err != nil {
			return query.Result{}, err
		}
		closure, err := product.TransitiveClosureContext(ctx, ctxOnly)
		if err != nil {
			return query.Result{}, err
		}

		added := 0
		for _, ri := range calls {
			from := states[ri]
			for u := 0; u < nG; u++ {
				for _, col := range closure.Row(ri*nG + u) {
					to := states[col/nG]
					if to.Label == from.Label && rsm.IsBoxFinal(to) && sg.AddEdge(from.Label, u, col%nG) {
						added++
					}
				}
			}
		}
		run.RoundDone(ctx, added, closure.Nonzero())
		if added == 0 {
			break
		}
	}

	initial, ok := sg.Automaton().Matrix(rsm.Initial)
	if !ok {
		return query.Result{}, nil
	}
	ix := nodeIndex{nodes: base.States()}

	return collect(ix, o, g, initial.Each), nil
}
