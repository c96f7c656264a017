// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/edgelist"
	"github.com/katalvlaran/mincut/karger"
	"github.com/katalvlaran/mincut/report"
)

// runOptions are the run flags that do not live in config.
type runOptions struct {
	verbose    bool
	partition  bool
	reportPath string
	watch      bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Estimate the minimum cut of an edge-list file (stdin when omitted or \"-\")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			if opts.watch && input == "-" {
				return errors.New("run: --watch needs a file argument")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			logger := a.cfg.CreateLoggerTo(cmd.ErrOrStderr())
			if err := a.runOnce(cmd.InOrStdin(), cmd.OutOrStdout(), logger, input, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.watch(ctx, cmd.OutOrStdout(), logger, input, opts)
		},
	}

	f := cmd.Flags()
	f.String("algo", "", "algorithm: karger | karger-stein")
	f.String("mode", "", "execute | approx | iterate | success")
	f.Int("trials", 0, "trials for --mode iterate")
	f.Float64("prob", 0, "success probability for --mode success")
	f.Int("threshold", 0, "Karger–Stein base-case size")
	f.Int64("seed", 0, "RNG seed (0 = fixed default)")
	f.Int("workers", 0, "goroutines running trials")
	f.Bool("strict", false, "reject inputs whose directed weights are not symmetric")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log run statistics")
	f.BoolVar(&opts.partition, "partition", false, "also print the two sides of a cut of the reported weight")
	f.StringVar(&opts.reportPath, "report", "", "append the run to a TOML report file")
	f.BoolVar(&opts.watch, "watch", false, "re-run whenever the input file changes")

	v := a.cfg.Viper()
	for flag, key := range map[string]string{
		"algo":      "algorithm.name",
		"mode":      "algorithm.mode",
		"trials":    "algorithm.trials",
		"prob":      "algorithm.success_prob",
		"threshold": "algorithm.threshold",
		"seed":      "algorithm.seed",
		"workers":   "performance.workers",
		"strict":    "input.strict_symmetry",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

// loadGraph reads input, "-" meaning stdin.
func loadGraph(stdin io.Reader, input string) (*contraction.Graph, error) {
	if input == "-" {
		return edgelist.ReadGraph(stdin)
	}

	return edgelist.LoadFile(input)
}

// runOnce loads the input, runs the configured algorithm and prints the cut.
func (a *app) runOnce(stdin io.Reader, out io.Writer, logger zerolog.Logger, input string, opts runOptions) error {
	g, err := loadGraph(stdin, input)
	if err != nil {
		return err
	}

	if err := g.Symmetric(); err != nil {
		if a.cfg.StrictSymmetry() {
			return fmt.Errorf("run: %s: %w", input, err)
		}
		logger.Warn().Err(err).Str("input", input).Msg("asymmetric input; cut weights are not doubled undirected cuts")
	}

	// Stats are collected for --report even when the run is quiet.
	var stats karger.Stats
	runLogger := logger
	if !opts.verbose {
		runLogger = logger.Level(zerolog.WarnLevel)
	}
	alg, err := a.cfg.NewAlgorithm(g, runLogger, karger.WithOnStats(func(s karger.Stats) { stats = s }))
	if err != nil {
		return err
	}

	cut, err := a.cfg.Run(alg, opts.verbose || opts.reportPath != "")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "min cut: %d\n", cut)

	var side0, side1 []int
	if opts.partition {
		trials := max(1, alg.MinNumTrials(0.999))
		labels, ok, err := karger.Witness(g, cut, trials, karger.WithSeed(a.cfg.Seed()))
		if err != nil {
			return err
		}
		if ok {
			side0, side1 = contraction.Partition(labels)
			fmt.Fprintf(out, "side 0: %v\nside 1: %v\n", side0, side1)
		} else {
			logger.Warn().Int("trials", trials).Msg("no partition of the reported weight found")
		}
	}

	if opts.reportPath == "" {
		return nil
	}
	run := report.Run{
		Input:      input,
		Algorithm:  a.cfg.Algorithm(),
		Mode:       a.cfg.Mode(),
		Seed:       a.cfg.Seed(),
		Workers:    a.cfg.Workers(),
		FinishedAt: time.Now().UTC(),
		Side0:      side0,
		Side1:      side1,
	}
	if ks, ok := alg.(*karger.KargerStein); ok {
		run.Threshold = ks.Threshold()
	}

	return report.Save(opts.reportPath, run.FromStats(stats))
}

// watch re-runs on every settled change of input until ctx ends. Errors of
// a single run are logged, not fatal: the file may be mid-edit.
func (a *app) watch(ctx context.Context, out io.Writer, logger zerolog.Logger, input string, opts runOptions) error {
	w, err := edgelist.NewWatcher(input, 0)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	logger.Info().Str("input", input).Msg("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-w.Changes:
			if err := a.runOnce(nil, out, logger, path, opts); err != nil {
				logger.Error().Err(err).Str("input", path).Msg("run failed")
			}
		}
	}
}
