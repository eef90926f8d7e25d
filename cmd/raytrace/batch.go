// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/photon/geodesic"
	"github.com/katalvlaran/photon/raytrace"
)

type batchFlags struct {
	file        string
	workers     int
	metricsFile string
	format      string
}

func newBatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Trace every ray of a YAML request file",
		Long: `Trace the rays listed in a request file concurrently.

Rays that cannot be traced are reported and the others still complete; the
command then exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBatch(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "YAML request file")
	fl.IntVarP(&f.workers, "workers", "w", 0, "rays traced at once (0: config value or GOMAXPROCS)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.format, "format", formatJSON, "output format: csv or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, f *batchFlags) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	if f.workers < 0 {
		return usageErrorf("--workers must be >= 0, got %d", f.workers)
	}

	reqs, pos, err := raytrace.LoadRequests(f.file)
	if err != nil {
		return usageErrorf("%w", err)
	}

	opts := []raytrace.TracerOption{raytrace.WithLogger(a.logger)}
	workers := a.cfg.Batch.Workers
	if f.workers > 0 {
		workers = f.workers
	}
	if workers > 0 {
		opts = append(opts, raytrace.WithWorkers(workers))
	}
	var metrics *raytrace.Metrics
	if f.metricsFile != "" {
		metrics = raytrace.NewMetrics()
		opts = append(opts, raytrace.WithMetrics(metrics))
	}

	tracer := raytrace.NewTracer(geodesic.NewSolver(a.cfg.solverOptions()...), opts...)
	results, err := tracer.Batch(cmd.Context(), pos.Apply(reqs))
	if err != nil {
		return solveError(err)
	}

	if f.format == formatJSON {
		err = writeJSON(a.out, results)
	} else {
		err = writeResultsCSV(a.out, results)
	}
	if err != nil {
		return solveError(err)
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(f.metricsFile); err != nil {
			return solveError(err)
		}
		a.logger.Debug("metrics written", slog.String("path", f.metricsFile))
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return solveError(fmt.Errorf("%d of %d rays failed", failed, len(results)))
	}

	return nil
}
