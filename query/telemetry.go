// SPDX-License-Identifier: MIT

// File: telemetry.go
// Role: per-query span, metrics, structured logging and round accounting.
// Concurrency:
//   - A Run belongs to one query goroutine. Metric instruments are created
//     once per process and are safe for concurrent use.

package query

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer and meter.
const instrumentationName = "github.com/katalvlaran/lvpath"

var meter = otel.Meter(instrumentationName)

var (
	queryLatency metric.Float64Histogram
	queryRounds  metric.Int64Counter
	queryPairs   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		queryLatency, err = meter.Float64Histogram(
			"lvpath_query_duration_seconds",
			metric.WithDescription("Duration of path queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryRounds, err = meter.Int64Counter(
			"lvpath_fixpoint_rounds_total",
			metric.WithDescription("Fixpoint rounds executed by path queries"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryPairs, err = meter.Int64Histogram(
			"lvpath_query_pairs",
			metric.WithDescription("Number of node pairs per query result"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// Run tracks one query execution: its id, span, logger and round count.
type Run struct {
	ID     string
	Algo   string
	Logger *slog.Logger

	span      trace.Span
	started   time.Time
	rounds    int
	maxRounds int
}

// Begin starts the span and logger for a query run by algo.
// The returned context carries the span; pass it to nested calls.
func Begin(ctx context.Context, algo string, o Options, attrs ...attribute.KeyValue) (context.Context, *Run) {
	id := uuid.NewString()
	tracer := o.TracerProvider.Tracer(instrumentationName)

	all := append([]attribute.KeyValue{
		attribute.String("lvpath.query_id", id),
		attribute.String("lvpath.algo", algo),
		attribute.String("lvpath.format", o.Format.String()),
		attribute.Int("lvpath.start_nodes", len(o.Start)),
		attribute.Int("lvpath.final_nodes", len(o.Final)),
	}, attrs...)
	ctx, span := tracer.Start(ctx, "lvpath."+algo, trace.WithAttributes(all...))

	return ctx, &Run{
		ID:        id,
		Algo:      algo,
		Logger:    o.Logger.With(slog.String("query_id", id), slog.String("algo", algo)),
		span:      span,
		started:   time.Now(),
		maxRounds: o.MaxRounds,
	}
}

// NextRound is called before each fixpoint round. It returns ctx.Err() if
// the context is done and ErrRoundLimit once the round limit is exceeded.
func (r *Run) NextRound(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.rounds++
	if r.maxRounds > 0 && r.rounds > r.maxRounds {
		return fmt.Errorf("%w: %s after %d rounds", ErrRoundLimit, r.Algo, r.maxRounds)
	}

	return nil
}

// Rounds returns the number of rounds started so far.
func (r *Run) Rounds() int { return r.rounds }

// RoundDone logs the outcome of the current round at debug level.
func (r *Run) RoundDone(ctx context.Context, added, nnz int) {
	r.Logger.DebugContext(ctx, "fixpoint round",
		slog.Int("round", r.rounds),
		slog.Int("added", added),
		slog.Int("nnz", nnz),
	)
}

// End closes the span, records metrics and logs the summary. It returns err
// unchanged so callers can write `return res, run.End(ctx, res, err)`.
func (r *Run) End(ctx context.Context, res Result, err error) error {
	defer r.span.End()

	elapsed := time.Since(r.started)
	r.span.SetAttributes(
		attribute.Int("lvpath.rounds", r.rounds),
		attribute.Int("lvpath.pairs", res.Len()),
	)
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.Logger.WarnContext(ctx, "path query failed",
			slog.Int("rounds", r.rounds),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
	} else {
		r.span.SetStatus(codes.Ok, "")
		r.Logger.InfoContext(ctx, "path query done",
			slog.Int("rounds", r.rounds),
			slog.Int("pairs", res.Len()),
			slog.Duration("elapsed", elapsed),
		)
	}

	if initMetrics() == nil {
		attrs := metric.WithAttributes(
			attribute.String("algo", r.Algo),
			attribute.Bool("success", err == nil),
		)
		queryLatency.Record(ctx, elapsed.Seconds(), attrs)
		queryRounds.Add(ctx, int64(r.rounds), attrs)
		if err == nil {
			queryPairs.Record(ctx, int64(res.Len()), metric.WithAttributes(attribute.String("algo", r.Algo)))
		}
	}

	return err
}
