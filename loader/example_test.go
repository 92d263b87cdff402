// SPDX-License-Identifier: MIT
package loader_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvpath/loader"
)

func ExampleReadEdgeList() {
	g, err := loader.ReadEdgeList(strings.NewReader("0 1 a\n1 2 b\n2 0 a\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	info, _ := loader.Info(g)
	fmt.Print(info)
	// Output:
	// nodes:      3
	// edges:      3
	// labels:     a, b
	// components: 1
	// acyclic:    no
}

func ExampleWriteYAML() {
	g, _ := loader.ReadEdgeList(strings.NewReader("ann bob knows\n"))
	_ = loader.WriteYAML(os.Stdout, "tiny", g)
	// Output:
	// name: tiny
	// directed: true
	// nodes:
	//   - ann
	//   - bob
	// edges:
	//   - from: ann
	//     to: bob
	//     label: knows
}
