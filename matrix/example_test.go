// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/matrix"
)

// ExampleMul squares a 3-node path adjacency to find 2-step reachability.
func ExampleMul() {
	a := matrix.New(matrix.NewConfig(), 3, 3)
	a.Set(0, 1)
	a.Set(1, 2)

	two, _ := matrix.Mul(a, a)
	two.Each(func(i, j int) { fmt.Printf("%d -> %d\n", i, j) })

	// Output:
	// 0 -> 2
}

// ExampleOrInPlace shows the fixpoint idiom used by closure loops.
func ExampleOrInPlace() {
	cfg := matrix.NewConfig(matrix.WithSparse())
	reach := matrix.New(cfg, 3, 3)
	reach.Set(0, 1)
	reach.Set(1, 2)

	rounds := 0
	for {
		rounds++
		step, _ := matrix.Mul(reach, reach)
		if changed, _ := matrix.OrInPlace(reach, step); !changed {
			break
		}
	}
	fmt.Println("rounds:", rounds, "pairs:", reach.Nonzero())

	// Output:
	// rounds: 2 pairs: 3
}
