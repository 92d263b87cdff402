// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the storage backend.
// This file defines:
//   - Config (the explicit backend selection every automaton carries),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - NewConfig, which gathers options over the defaults.
//
// Design goals:
//   - No global registry and no string dispatch after startup: callers hold a
//     Config value and pass it down explicitly.
//   - Zero value is usable: Config{} selects DefaultFormat.
package matrix

// DefaultFormat is the backend used by Config{} and NewConfig().
const DefaultFormat = FormatDense

const panicUnknownFormat = "matrix: WithFormat: unknown format"

// Config carries the backend choice for every matrix an automaton allocates.
type Config struct {
	// Format selects the storage backend.
	Format Format
}

// Option mutates a Config. Constructors panic only on nonsensical values.
type Option func(*Config)

// WithFormat selects the storage backend.
// Panics if f is not FormatDense or FormatSparse.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(panicUnknownFormat)
	}

	return func(c *Config) { c.Format = f }
}

// WithDense is shorthand for WithFormat(FormatDense).
func WithDense() Option { return WithFormat(FormatDense) }

// WithSparse is shorthand for WithFormat(FormatSparse).
func WithSparse() Option { return WithFormat(FormatSparse) }

// NewConfig applies opts over the defaults, left to right.
func NewConfig(opts ...Option) Config {
	c := Config{Format: DefaultFormat}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
