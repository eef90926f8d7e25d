// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand: resolved configuration,
// logger and output streams.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

// newRootCmd builds the command tree writing results to out and logs to
// errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "raytrace",
		Short: "Trace photon paths around a Schwarzschild black hole",
		Long: `raytrace computes null geodesics of the Schwarzschild metric (M = 1,
horizon at r = 2) in closed form through elliptic integrals.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%w", err)
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")

	root.AddCommand(newSolveCmd(a), newBatchCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return usageErrorf("%w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return usageErrorf("%w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Float64("tolerance", cfg.Solver.Tolerance),
		slog.Int("min_samples", cfg.Solver.MinSamples),
		slog.Int("workers", cfg.Batch.Workers))

	return nil
}
