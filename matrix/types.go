// SPDX-License-Identifier: MIT

// Package matrix - the Bool capability shared by every backend.
//
// Purpose:
//   - One small interface that automata and path-query algorithms program against.
//   - Backends differ only in storage; semantics of every method are identical.
//
// AI-Hints:
//   - Free functions in impl_linear_algebra.go and ops_elementwise.go take fast
//     paths when both operands are *Dense or both are *Sparse.
//   - Row(i) returns a fresh sorted slice; iterate it instead of probing At(i, j)
//     across a whole row.

package matrix

// Bool is a rows×cols boolean matrix over the (∨, ∧) semiring.
//
// Contract:
//   - At/Set/Unset panic when (i, j) is outside the shape; Get/Put are the
//     checked variants returning ErrOutOfRange.
//   - Each visits set entries in row-major order (rows asc, columns asc).
//   - Row returns the sorted set columns of row i in a slice the caller owns.
//   - Clone returns an independent deep copy in the same Format.
//   - Equal compares shape and entries; it ignores the storage format.
type Bool interface {
	Rows() int
	Cols() int

	At(i, j int) bool
	Set(i, j int)
	Unset(i, j int)

	Get(i, j int) (bool, error)
	Put(i, j int, v bool) error

	Nonzero() int
	Each(fn func(i, j int))
	Row(i int) []int

	Clone() Bool
	Equal(other Bool) bool
	Format() Format
}

// Format selects a storage backend.
type Format int

const (
	// FormatDense stores each row as a bitset; best when rows are well populated.
	FormatDense Format = iota
	// FormatSparse stores each row as a sorted column slice (CSR-like rows).
	FormatSparse
)

const (
	formatNameDense  = "dense"
	formatNameSparse = "sparse"
)

// String returns the lower-case backend name ("dense" or "sparse").
func (f Format) String() string {
	switch f {
	case FormatDense:
		return formatNameDense
	case FormatSparse:
		return formatNameSparse
	default:
		return "unknown"
	}
}

// ParseFormat maps a backend name to its Format. It is meant for flag and
// config parsing at program edges; algorithms receive a Config, never a name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case formatNameDense:
		return FormatDense, nil
	case formatNameSparse:
		return FormatSparse, nil
	default:
		return 0, matrixErrorf("ParseFormat("+name+")", ErrUnknownFormat)
	}
}

// valid reports whether f names a provided backend.
func (f Format) valid() bool {
	return f == FormatDense || f == FormatSparse
}
