// SPDX-License-Identifier: MIT

// File: options.go
// Role: functional options shared by every path query.

package query

import (
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvpath/matrix"
)

const (
	// DefaultParallelism runs per-round work sequentially.
	DefaultParallelism = 1

	// DefaultMaxRounds disables the round limit.
	DefaultMaxRounds = 0
)

// Options holds the resolved query configuration.
type Options struct {
	// Start and Final restrict the node pairs reported; empty means every node.
	Start []string
	Final []string

	// Format selects the boolean matrix backend.
	Format matrix.Format

	// Logger receives per-round debug events and a per-query summary.
	Logger *slog.Logger

	// Parallelism bounds the goroutines used inside one fixpoint round.
	Parallelism int

	// MaxRounds, if > 0, aborts a fixpoint after that many rounds with ErrRoundLimit.
	MaxRounds int

	// Tracer provider for query spans.
	TracerProvider trace.TracerProvider
}

// Option configures a query.
type Option func(*Options)

// DefaultOptions returns the defaults: all nodes, dense matrices,
// slog.Default(), sequential rounds, no round limit, global tracer provider.
func DefaultOptions() Options {
	return Options{
		Format:         matrix.DefaultFormat,
		Logger:         slog.Default(),
		Parallelism:    DefaultParallelism,
		MaxRounds:      DefaultMaxRounds,
		TracerProvider: otel.GetTracerProvider(),
	}
}

// Gather applies opts over DefaultOptions.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MatrixConfig returns the matrix configuration selected by Format.
func (o Options) MatrixConfig() matrix.Config {
	return matrix.NewConfig(matrix.WithFormat(o.Format))
}

// WithStartNodes restricts result pairs to those starting at ids.
// Repeated calls accumulate. IDs absent from the graph are ignored.
func WithStartNodes(ids ...string) Option {
	return func(o *Options) { o.Start = append(o.Start, ids...) }
}

// WithFinalNodes restricts result pairs to those ending at ids.
// Repeated calls accumulate. IDs absent from the graph are ignored.
func WithFinalNodes(ids ...string) Option {
	return func(o *Options) { o.Final = append(o.Final, ids...) }
}

// WithFormat selects the matrix backend. Panics on an unknown Format.
func WithFormat(f matrix.Format) Option {
	if _, err := matrix.ParseFormat(f.String()); err != nil {
		panic(fmt.Sprintf("query: WithFormat: %v", err))
	}

	return func(o *Options) { o.Format = f }
}

// WithLogger sets the structured logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism bounds per-round goroutines. 0 means runtime.GOMAXPROCS(0).
// Panics if n < 0.
func WithParallelism(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("query: WithParallelism(%d): negative", n))
	}

	return func(o *Options) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Parallelism = n
	}
}

// WithMaxRounds sets the fixpoint round limit; 0 disables it. Panics if n < 0.
func WithMaxRounds(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("query: WithMaxRounds(%d): negative", n))
	}

	return func(o *Options) { o.MaxRounds = n }
}

// WithTracerProvider sets the provider for query spans; nil keeps the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}
