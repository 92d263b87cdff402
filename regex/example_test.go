// SPDX-License-Identifier: MIT
package regex_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/regex"
)

// ExampleCompile prints the minimal DFA of a*b.
func ExampleCompile() {
	d, err := regex.Compile("a*b")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(d)
	fmt.Println(d.Accepts([]string{"a", "a", "b"}))

	// Output:
	// 0: a->0 b->1
	// 1*:
	// true
}
