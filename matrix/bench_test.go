// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpath/matrix"
)

const benchN = 256

func randomBool(f matrix.Format, n int, density float64, seed int64) matrix.Bool {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New(matrix.Config{Format: f}, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				m.Set(i, j)
			}
		}
	}

	return m
}

func benchMul(b *testing.B, f matrix.Format, density float64) {
	a := randomBool(f, benchN, density, 1)
	c := randomBool(f, benchN, density, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(a, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_Dense_Sparse1pct(b *testing.B)  { benchMul(b, matrix.FormatDense, 0.01) }
func BenchmarkMul_Sparse_Sparse1pct(b *testing.B) { benchMul(b, matrix.FormatSparse, 0.01) }
func BenchmarkMul_Dense_20pct(b *testing.B)       { benchMul(b, matrix.FormatDense, 0.2) }
func BenchmarkMul_Sparse_20pct(b *testing.B)      { benchMul(b, matrix.FormatSparse, 0.2) }

func BenchmarkKron_Sparse(b *testing.B) {
	a := randomBool(matrix.FormatSparse, 16, 0.1, 3)
	c := randomBool(matrix.FormatSparse, benchN, 0.01, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Kron(a, c); err != nil {
			b.Fatal(err)
		}
	}
}
