// SPDX-License-Identifier: MIT

// Package geodesic: functional configuration for Solver.
// This file defines:
//   - documented defaults (single source of truth),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies setters on top of the defaults.
//
// The resolved Options value is immutable once a Solver holds it; there is
// no package-level mutable state.

package geodesic

import "math"

// ---------- Defaults ----------

const (
	// CriticalImpact is D_crit = √27, the impact parameter of the unstable
	// circular photon orbit for M = 1.
	CriticalImpact = 5.196152422706632

	// Mass is the normalized central mass used by every regime.
	Mass = 1.0

	// Horizon is the Schwarzschild radius 2M.
	Horizon = 2 * Mass

	// PhotonSphere is the radius 3M of the unstable circular photon orbit.
	PhotonSphere = 3 * Mass

	// DefaultTolerance is the half-width of the critical band around
	// D/D_crit − 1 = 0. It also decides tangential emission (|cos δ0|),
	// radial emission (|sin δ0|) and radius equality (relative).
	DefaultTolerance = 1e-12

	// DefaultMinSamples is the smallest sample count Solve accepts.
	DefaultMinSamples = 1
)

const (
	panicToleranceInvalid  = "geodesic: WithTolerance: tol must be finite, non-negative"
	panicMinSamplesInvalid = "geodesic: WithMinSamples: n must be >= 1"
)

// ---------- Public option type ----------

// Option mutates Options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective Solver configuration. Fields are unexported;
// use the WithX constructors.
type Options struct {
	tol        float64 // >= 0; DefaultTolerance
	dcrit      float64 // CriticalImpact
	minSamples int     // >= 1; DefaultMinSamples
}

// Tolerance returns the configured tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// CriticalImpact returns D_crit used for classification.
func (o Options) CriticalImpact() float64 { return o.dcrit }

// MinSamples returns the smallest sample count accepted by Solve.
func (o Options) MinSamples() int { return o.minSamples }

// WithTolerance sets the classification tolerance.
//
// Behavior highlights:
//   - tol = 0 makes every comparison strict; the critical regime is then
//     reached only when D/D_crit − 1 is exactly zero.
//
// Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMinSamples raises the minimum sample count accepted by Solve.
// Use 2 to forbid single-point paths.
//
// Panics if n < 1.
func WithMinSamples(n int) Option {
	if n < 1 {
		panic(panicMinSamplesInvalid)
	}

	return func(o *Options) { o.minSamples = n }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters in order on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:        DefaultTolerance,
		dcrit:      CriticalImpact,
		minSamples: DefaultMinSamples,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
