// SPDX-License-Identifier: MIT
package rpq_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/query"
	"github.com/katalvlaran/lvpath/rpq"
)

func BenchmarkRPQ(b *testing.B) {
	g := randomGraph(7, 200, 600, []string{"a", "b", "c"})
	const pattern = "(a|b)* c"

	for _, a := range algos {
		for _, f := range formats {
			b.Run(a.name+"/"+f.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = a.run(context.Background(), pattern, g,
						query.WithFormat(f),
						query.WithStartNodes("0", "1", "2", "3"),
					)
				}
			})
		}
	}
}

func BenchmarkMultiSource_Parallel(b *testing.B) {
	g := randomGraph(11, 300, 1200, []string{"a", "b", "c", "d"})
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("sparse/workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = rpq.MultiSource(context.Background(), "(a|b|c|d)*", g,
					query.WithFormat(matrix.FormatSparse),
					query.WithParallelism(workers),
				)
			}
		})
	}
}
