// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/cfpq"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/loader"
	"github.com/katalvlaran/lvpath/query"
	"github.com/katalvlaran/lvpath/rpq"
)

// queryFlags mirror Config; only flags the user set override the config file.
type queryFlags struct {
	graph       string
	start       []string
	final       []string
	format      string
	parallelism int
	maxRounds   int
	timeout     time.Duration
	logLevel    string
	telemetry   string
}

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	flags      queryFlags
	cfg        Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvpath",
		Short:         "Regular and context-free path queries over labeled graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.applyFlags(cmd.Flags(), &a.flags); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.logLevel()}))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.flags.graph, "graph", "g", "", "graph file (.csv/.txt edge list or .yaml dataset)")
	pf.StringSliceVar(&a.flags.start, "start", nil, "start nodes (default: all)")
	pf.StringSliceVar(&a.flags.final, "final", nil, "final nodes (default: all)")
	pf.StringVar(&a.flags.format, "format", "dense", "matrix backend: dense|sparse")
	pf.IntVar(&a.flags.parallelism, "parallelism", query.DefaultParallelism, "goroutines per fixpoint round (0 = GOMAXPROCS)")
	pf.IntVar(&a.flags.maxRounds, "max-rounds", query.DefaultMaxRounds, "abort after this many fixpoint rounds (0 = unbounded)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "query timeout (0 = none)")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "debug|info|warn|error")
	pf.StringVar(&a.flags.telemetry, "telemetry", telemetryNone, "span and metric exporter: none|stdout (written to stderr)")

	root.AddCommand(a.rpqCmd(), a.cfpqCmd(), a.infoCmd(), genCmd())

	return root
}

func (a *app) rpqCmd() *cobra.Command {
	var pattern, algo string
	cmd := &cobra.Command{
		Use:   "rpq",
		Short: "Answer a regular path query",
		Example: `  lvpath rpq -g graph.csv --pattern 'a* b'
  lvpath rpq -g graph.csv --pattern '(a|b)* c' --algo msbfs --start 0,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var run func(context.Context, string, *core.Graph, ...query.Option) (query.Result, error)
			switch algo {
			case "tensor":
				run = rpq.Tensor
			case "msbfs":
				run = rpq.MultiSource
			default:
				return fmt.Errorf("unknown rpq algorithm %q (want tensor|msbfs)", algo)
			}
			return a.query(cmd, func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
				return run(ctx, pattern, g, opts...)
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression over edge labels")
	cmd.Flags().StringVar(&algo, "algo", "tensor", "tensor|msbfs")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func (a *app) cfpqCmd() *cobra.Command {
	var grammarPath, rsmPath, algo string
	cmd := &cobra.Command{
		Use:   "cfpq",
		Short: "Answer a context-free path query",
		Example: `  lvpath cfpq -g graph.csv --grammar brackets.cfg --algo matrix
  lvpath cfpq -g graph.csv --rsm brackets.rsm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (grammarPath == "") == (rsmPath == "") {
				return fmt.Errorf("exactly one of --grammar and --rsm is required")
			}
			if rsmPath != "" {
				if cmd.Flags().Changed("algo") && algo != "tensor" {
					return fmt.Errorf("--rsm needs --algo tensor, got %q", algo)
				}
				algo = "tensor"
			}

			var run func(context.Context, *core.Graph, []query.Option) (query.Result, error)
			switch {
			case rsmPath != "":
				r, err := readRSM(rsmPath)
				if err != nil {
					return err
				}
				run = func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
					return cfpq.Tensor(ctx, r, g, opts...)
				}
			default:
				cfg, err := readGrammar(grammarPath)
				if err != nil {
					return err
				}
				switch algo {
				case "hellings":
					run = func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
						return cfpq.Hellings(ctx, cfg, g, opts...)
					}
				case "matrix":
					run = func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
						return cfpq.Matrix(ctx, cfg, g, opts...)
					}
				case "tensor":
					r, err := grammar.FromCFG(cfg)
					if err != nil {
						return err
					}
					run = func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
						return cfpq.Tensor(ctx, r, g, opts...)
					}
				default:
					return fmt.Errorf("unknown cfpq algorithm %q (want hellings|matrix|tensor)", algo)
				}
			}

			return a.query(cmd, func(ctx context.Context, g *core.Graph, opts []query.Option) (query.Result, error) {
				return run(ctx, g, opts)
			})
		},
	}
	cmd.Flags().StringVar(&grammarPath, "grammar", "", "grammar file (Head -> alt | alt)")
	cmd.Flags().StringVar(&rsmPath, "rsm", "", "RSM file (Head -> regex)")
	cmd.Flags().StringVar(&algo, "algo", "matrix", "hellings|matrix|tensor")

	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	var dotPath string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize a graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			info, err := loader.Info(g)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), info)
			if dotPath != "" {
				return loader.Save(dotPath, g)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dotPath, "dot", "", "also write the graph as Graphviz DOT to this file")

	return cmd
}

// query loads the graph, installs telemetry and the timeout, runs fn and
// prints the sorted result.
func (a *app) query(cmd *cobra.Command, fn func(context.Context, *core.Graph, []query.Option) (query.Result, error)) (err error) {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	opts, err := a.cfg.queryOptions(a.logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := initTelemetry(ctx, a.cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); err == nil {
			err = serr
		}
	}()

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	res, err := fn(ctx, g, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), res)

	return err
}

func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Graph == "" {
		return nil, fmt.Errorf("no graph: set --graph or graph in --config")
	}
	g, err := loader.Load(a.cfg.Graph)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded", slog.String("path", a.cfg.Graph), slog.Int("nodes", g.VertexCount()), slog.Int("edges", g.EdgeCount()))

	return g, nil
}

func readGrammar(path string) (*grammar.CFG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return grammar.Parse(string(data))
}

func readRSM(path string) (*grammar.RSM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return grammar.ParseRSM(string(data))
}
