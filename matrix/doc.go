// SPDX-License-Identifier: MIT

// Package matrix provides boolean matrices over the (∨, ∧) semiring with two
// interchangeable storage backends, the algebra that adjacency-matrix automata
// and path queries are written in.
//
// Backends:
//
//	Dense   – one bitset per row; word-parallel unions and differences.
//	Sparse  – one sorted column slice per row; memory ∝ set entries.
//
// A backend is chosen explicitly through Config (matrix.New(cfg, r, c)); there
// is no registry and no lookup by name after flag parsing (ParseFormat).
//
// Operations:
//
//	Mul(a, b)            boolean product
//	Kron(a, b)           Kronecker product (automaton intersection)
//	Transpose(a)
//	Or(a, b), OrInPlace(dst, src) (changed bool, err)
//	AndNot(a, b)         exact a ∧ ¬b
//	Identity(cfg, n), SetDiagonal(m)
//	Slice(m, r0, r1), PutRows(dst, r0, src)   row-block confinement
//	Convert(m, cfg)      change backend
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrNilMatrix, ErrUnknownFormat – wrapped with the operation name; match
//	with errors.Is.
//
// Sub-package ops holds whole-matrix algorithms (Warshall closure).
package matrix
