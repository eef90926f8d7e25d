// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/photon/geodesic"
	"github.com/katalvlaran/photon/raytrace"
)

type solveFlags struct {
	r0, theta0 float64
	x, y       float64
	delta0     float64
	stop       float64
	samples    int
	degrees    bool
	format     string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Trace a single ray",
		Long: `Trace one photon from (r0, theta0), or from the Cartesian point (x, y),
emitted at delta0 from the outward radial direction.

--stop is the final radius. For a scattered inward ray a negative value
(-r) continues through periastron and out to r. For a critical inward ray
it is the number of turns around the photon sphere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.r0, "r0", 0, "start radius (> 2)")
	fl.Float64Var(&f.theta0, "theta0", 0, "start polar angle")
	fl.Float64Var(&f.x, "x", 0, "start x (instead of --r0/--theta0)")
	fl.Float64Var(&f.y, "y", 0, "start y (instead of --r0/--theta0)")
	fl.Float64Var(&f.delta0, "delta0", 0, "emission angle from the outward radial direction")
	fl.Float64Var(&f.stop, "stop", 0, "stop radius, or turn count for critical inward rays")
	fl.IntVar(&f.samples, "samples", 500, "number of path samples")
	fl.BoolVar(&f.degrees, "degrees", false, "read --theta0 and --delta0 in degrees")
	fl.StringVar(&f.format, "format", formatCSV, "output format: csv or json")

	cmd.MarkFlagsMutuallyExclusive("r0", "x")
	cmd.MarkFlagsMutuallyExclusive("theta0", "y")
	cmd.MarkFlagsRequiredTogether("x", "y")
	_ = cmd.MarkFlagRequired("delta0")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}

	theta0, delta0 := f.theta0, f.delta0
	if f.degrees {
		theta0, delta0 = theta0*math.Pi/180, delta0*math.Pi/180
	}

	var ray geodesic.RayState
	switch {
	case cmd.Flags().Changed("x"):
		req := raytrace.Request{X: f.x, Y: f.y, Delta0: delta0, Stop: f.stop, Samples: f.samples}
		if err := req.Validate(); err != nil {
			return usageErrorf("%w", err)
		}
		ray = req.RayState()
	case cmd.Flags().Changed("r0"):
		ray = geodesic.RayState{R0: f.r0, Theta0: theta0, Delta0: delta0}
	default:
		return usageErrorf("one of --r0 or --x/--y is required")
	}

	solver := geodesic.NewSolver(a.cfg.solverOptions()...)
	tr, err := solver.Solve(ray, f.stop, f.samples)
	if err != nil {
		a.logger.Error("solve failed",
			slog.Float64("r0", ray.R0),
			slog.Float64("theta0", ray.Theta0),
			slog.Float64("delta0", ray.Delta0),
			slog.Float64("stop", f.stop),
			slog.String("error", err.Error()))

		return solveError(err)
	}
	a.logger.Info("ray traced",
		slog.String("regime", tr.Regime.String()),
		slog.Float64("impact", tr.Impact),
		slog.Int("samples", len(tr.Path)))

	if f.format == formatJSON {
		return writeJSON(a.out, tr)
	}

	return writeTrajectoryCSV(a.out, tr)
}
