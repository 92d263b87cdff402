// SPDX-License-Identifier: MIT

// Command lvpath runs regular and context-free path queries over labeled
// graph files, summarizes graphs and generates benchmark graphs.
//
//	lvpath rpq  --graph g.csv --pattern 'a* b' [--algo tensor|msbfs]
//	lvpath cfpq --graph g.csv --grammar g.cfg [--algo hellings|matrix|tensor]
//	lvpath cfpq --graph g.csv --rsm g.rsm
//	lvpath info --graph g.yaml [--dot g.dot]
//	lvpath gen  two-cycles --n 3 --m 5 --labels a,b --out g.csv
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lvpath:", err)
		os.Exit(1)
	}
}
