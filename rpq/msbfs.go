// SPDX-License-Identifier: MIT

// File: msbfs.go
// Role: RPQ by multi-source breadth-first frontier propagation.
// Determinism:
//   - Block i of the frontier belongs to the i-th graph start state in index
//     order, which is lexicographic node order for graph automata.
// Concurrency:
//   - Per-symbol advances of one round run on up to Parallelism goroutines;
//     errgroup.Wait is the round barrier before next ∧ ¬visited is taken.

package rpq

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/query"
)

// MultiSource answers the regular path query pattern over g with a
// multi-source frontier instead of a materialized product closure.
// It returns exactly the pairs Tensor returns.
//
// Errors: as Tensor.
//
// Complexity: O(rounds · |Σ| · cost(Mul over (|R|·k) × |V|)), where k is the
// number of start nodes and rounds ≤ |R|·|V|.
func MultiSource(ctx context.Context, pattern string, g *core.Graph, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "rpq.msbfs", o, attribute.String("lvpath.pattern", pattern))

	r, gr, err := build(pattern, g, o)
	if err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := multiSource(ctx, run, r, gr, o)

	return res, run.End(ctx, res, err)
}

// MultiSourceAutomata is MultiSource over prebuilt automata; see TensorAutomata.
func MultiSourceAutomata(ctx context.Context, r, gr *automaton.Automaton, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "rpq.msbfs", o)

	if err := validate(r, gr); err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := multiSource(ctx, run, r, gr, o)

	return res, run.End(ctx, res, err)
}

// frontier carries the fixed inputs of one multi-source run.
type frontier struct {
	nR      int
	starts  []int
	symbols []automaton.Symbol
	graph   map[automaton.Symbol]matrix.Bool
	regexT  map[automaton.Symbol]matrix.Bool
	cfg     matrix.Config
	workers int
}

// multiSource is the algorithm proper.
//
// Implementation:
//   - Stage 1: F has one block of |R| rows per graph start state u_i;
//     F[i·|R| + rs][u_i] = 1 for every regex start rs.
//   - Stage 2: visited = F; loop: next = ⋁_s advance(F, s);
//     F = next ∧ ¬visited; visited |= F; stop when F is empty.
//   - Stage 3: (u_i, v) is an answer iff visited[i·|R| + rf][v] for a regex
//     final rf and v a graph final state.
func multiSource(ctx context.Context, run *query.Run, r, gr *automaton.Automaton, o query.Options) (query.Result, error) {
	f, err := newFrontier(r, gr, o)
	if err != nil {
		return query.Result{}, err
	}

	front := matrix.New(f.cfg, f.nR*len(f.starts), gr.NumStates())
	for i, u := range f.starts {
		for _, rs := range r.StartIndices() {
			front.Set(i*f.nR+rs, u)
		}
	}
	visited := front.Clone()

	for front.Nonzero() > 0 {
		if err := run.NextRound(ctx); err != nil {
			return query.Result{}, err
		}
		next, err := f.step(ctx, front)
		if err != nil {
			return query.Result{}, err
		}
		if front, err = matrix.AndNot(next, visited); err != nil {
			return query.Result{}, err
		}
		if _, err = matrix.OrInPlace(visited, front); err != nil {
			return query.Result{}, err
		}
		run.RoundDone(ctx, front.Nonzero(), visited.Nonzero())
	}

	var res query.Result
	for i, u := range f.starts {
		for _, rf := range r.FinalIndices() {
			for _, v := range visited.Row(i*f.nR + rf) {
				if gr.IsFinal(v) {
					res.Add(gr.StateAt(u), gr.StateAt(v))
				}
			}
		}
	}

	return res, nil
}

func newFrontier(r, gr *automaton.Automaton, o query.Options) (*frontier, error) {
	f := &frontier{
		nR:      r.NumStates(),
		starts:  gr.StartIndices(),
		symbols: automaton.SharedSymbols(r, gr),
		graph:   make(map[automaton.Symbol]matrix.Bool),
		regexT:  make(map[automaton.Symbol]matrix.Bool),
		cfg:     gr.Config(),
		workers: o.Parallelism,
	}
	for _, s := range f.symbols {
		gm, _ := gr.Matrix(s)
		rm, _ := r.Matrix(s)
		rt, err := matrix.Transpose(rm)
		if err != nil {
			return nil, err
		}
		if rt, err = matrix.Convert(rt, f.cfg); err != nil {
			return nil, err
		}
		f.graph[s] = gm
		f.regexT[s] = rt
	}

	return f, nil
}

// step ORs advance(front, s) over every shared symbol.
func (f *frontier) step(ctx context.Context, front matrix.Bool) (matrix.Bool, error) {
	parts := make([]matrix.Bool, len(f.symbols))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(f.workers, 1))
	for k, s := range f.symbols {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			m, err := f.advance(front, s)
			parts[k] = m
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	next := matrix.New(f.cfg, front.Rows(), front.Cols())
	for _, m := range parts {
		if _, err := matrix.OrInPlace(next, m); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// advance moves every block one s-step: the graph side for all blocks at
// once (F·G[s]), then the regex side per block (R[s]ᵀ·block), so blocks
// never mix.
func (f *frontier) advance(front matrix.Bool, s automaton.Symbol) (matrix.Bool, error) {
	moved, err := matrix.Mul(front, f.graph[s])
	if err != nil {
		return nil, err
	}

	out := matrix.New(f.cfg, moved.Rows(), moved.Cols())
	for i := range f.starts {
		block, err := matrix.Slice(moved, i*f.nR, (i+1)*f.nR)
		if err != nil {
			return nil, err
		}
		if block.Nonzero() == 0 {
			continue
		}
		shifted, err := matrix.Mul(f.regexT[s], block)
		if err != nil {
			return nil, err
		}
		if err := matrix.PutRows(out, i*f.nR, shifted); err != nil {
			return nil, err
		}
	}

	return out, nil
}
