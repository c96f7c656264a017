// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/edgelist"
)

// topologies maps a generate argument to its parameter count and constructor.
var topologies = map[string]struct {
	params int
	usage  string
	build  func(p []int, prob float64) builder.Constructor
}{
	"path":     {1, "path N", func(p []int, _ float64) builder.Constructor { return builder.Path(p[0]) }},
	"cycle":    {1, "cycle N", func(p []int, _ float64) builder.Constructor { return builder.Cycle(p[0]) }},
	"star":     {1, "star N", func(p []int, _ float64) builder.Constructor { return builder.Star(p[0]) }},
	"wheel":    {1, "wheel N", func(p []int, _ float64) builder.Constructor { return builder.Wheel(p[0]) }},
	"complete": {1, "complete N", func(p []int, _ float64) builder.Constructor { return builder.Complete(p[0]) }},
	"grid":     {2, "grid ROWS COLS", func(p []int, _ float64) builder.Constructor { return builder.Grid(p[0], p[1]) }},
	"barbell":  {2, "barbell K BRIDGES", func(p []int, _ float64) builder.Constructor { return builder.Barbell(p[0], p[1]) }},
	"random":   {1, "random N (edge probability via --p)", func(p []int, prob float64) builder.Constructor { return builder.RandomSparse(p[0], prob) }},
}

func topologyUsage() string {
	var lines []string
	for _, name := range []string{"path", "cycle", "star", "wheel", "complete", "grid", "barbell", "random"} {
		lines = append(lines, "  "+topologies[name].usage)
	}

	return strings.Join(lines, "\n")
}

func newGenerateCmd() *cobra.Command {
	var (
		output    string
		seed      int64
		prob      float64
		minWeight int64
		maxWeight int64
	)

	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY PARAMS...",
		Short: "Write a fixture graph as an edge list",
		Long:  "Topologies:\n" + topologyUsage(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, ok := topologies[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("generate: unknown topology %q\n%s", args[0], topologyUsage())
			}
			if len(args)-1 != topo.params {
				return fmt.Errorf("generate: usage: %s", topo.usage)
			}
			params := make([]int, topo.params)
			for i, raw := range args[1:] {
				v, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("generate: parameter %q: %w", raw, err)
				}
				params[i] = v
			}
			if minWeight < 0 || maxWeight < minWeight {
				return fmt.Errorf("generate: need 0 ≤ --min-weight ≤ --max-weight, got %d, %d", minWeight, maxWeight)
			}

			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformWeightFn(minWeight, maxWeight)),
			}
			n, edges, err := builder.BuildEdges(bopts, topo.build(params, prob))
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return edgelist.Write(cmd.OutOrStdout(), n, edges)
			}

			return writeFile(output, n, edges)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (stdout when empty or \"-\")")
	f.Int64Var(&seed, "seed", 1, "RNG seed for random topologies and weights")
	f.Float64Var(&prob, "p", 0.1, "edge probability for random")
	f.Int64Var(&minWeight, "min-weight", 1, "smallest edge weight")
	f.Int64Var(&maxWeight, "max-weight", 1, "largest edge weight")

	return cmd
}

// writeFile writes the edge list to path. A failed close is reported, so a
// short write never exits cleanly.
func writeFile(path string, n int, edges []contraction.DirectedEdge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("generate: closing %s: %w", path, cerr)
		}
	}()

	return edgelist.Write(f, n, edges)
}
