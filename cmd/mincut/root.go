// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/config"
)

// app carries the state shared by the command tree.
type app struct {
	cfg     *config.Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "mincut",
		Short: "Randomized global minimum cut (Karger / Karger–Stein)",
		Long: "mincut reads an edge list (first line: vertex count; then \"v w [weight]\" lines)\n" +
			"and estimates its global minimum cut by randomized contraction.\n" +
			"Reported cut weights are doubled for undirected inputs listed in both directions.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .mincut.yaml in . or $HOME)")
	rootCmd.PersistentFlags().String("log-level", "", "zerolog level (debug, info, warn, error)")
	_ = a.cfg.Viper().BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newRunCmd(a), newGenerateCmd())

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads --config, or the first .mincut.yaml found in the working
// directory or home. No file is fine; defaults and MINCUT_* env apply.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		return a.cfg.LoadFromFile(a.cfgFile)
	}

	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, ".mincut.yaml")
		if _, err := os.Stat(path); err == nil {
			return a.cfg.LoadFromFile(path)
		}
	}

	return nil
}
