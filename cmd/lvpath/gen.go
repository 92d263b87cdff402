// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/loader"
)

// genCmd groups the graph generators. Each writes to --out (format by
// extension) or, without --out, an edge list to stdout.
func genCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a labeled benchmark graph",
	}
	cmd.PersistentFlags().StringVarP(&out, "out", "o", "", "output file (.csv, .yaml, .dot); default stdout edge list")

	emit := func(cmd *cobra.Command, bopts []builder.BuilderOption, con builder.Constructor) error {
		g, err := builder.Build(bopts, con)
		if err != nil {
			return err
		}
		if out != "" {
			return loader.Save(out, g)
		}
		return loader.WriteEdgeList(cmd.OutOrStdout(), g)
	}

	var n, m int
	var labels []string
	twoCycles := &cobra.Command{
		Use:     "two-cycles",
		Short:   "Two directed cycles sharing node 0",
		Example: "  lvpath gen two-cycles --n 3 --m 5 --labels a,b -o g.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(labels) != 2 {
				return fmt.Errorf("two-cycles needs exactly two labels, got %d", len(labels))
			}
			return emit(cmd, nil, builder.TwoCycles(n, m, labels[0], labels[1]))
		},
	}
	twoCycles.Flags().IntVar(&n, "n", 3, "nodes in the first cycle besides node 0")
	twoCycles.Flags().IntVar(&m, "m", 3, "nodes in the second cycle besides node 0")
	twoCycles.Flags().StringSliceVar(&labels, "labels", []string{"a", "b"}, "labels of the two cycles")

	var cycleN int
	var cycleLabel string
	cycle := &cobra.Command{
		Use:   "cycle",
		Short: "One directed labeled cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, nil, builder.LabeledCycle(cycleN, cycleLabel))
		},
	}
	cycle.Flags().IntVar(&cycleN, "n", 3, "number of nodes")
	cycle.Flags().StringVar(&cycleLabel, "label", "a", "edge label")

	path := &cobra.Command{
		Use:   "path LABEL...",
		Short: "A path spelling the given labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, nil, builder.LabeledPath(args...))
		},
	}

	var rn int
	var p float64
	var seed int64
	var rlabels []string
	random := &cobra.Command{
		Use:   "random",
		Short: "A seeded random labeled graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomLabeled(rn, p, rlabels...))
		},
	}
	random.Flags().IntVar(&rn, "n", 10, "number of nodes")
	random.Flags().Float64Var(&p, "p", 0.1, "probability of each (pair, label) edge")
	random.Flags().Int64Var(&seed, "seed", 1, "random seed")
	random.Flags().StringSliceVar(&rlabels, "labels", []string{"a", "b"}, "edge labels")

	var rows, cols int
	var right, down string
	grid := &cobra.Command{
		Use:   "grid",
		Short: "A rows×cols grid with right and down labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, nil, builder.LabeledGrid(rows, cols, right, down))
		},
	}
	grid.Flags().IntVar(&rows, "rows", 3, "grid rows")
	grid.Flags().IntVar(&cols, "cols", 3, "grid columns")
	grid.Flags().StringVar(&right, "right", "r", "label of horizontal edges")
	grid.Flags().StringVar(&down, "down", "d", "label of vertical edges")

	cmd.AddCommand(twoCycles, cycle, path, random, grid)

	return cmd
}
