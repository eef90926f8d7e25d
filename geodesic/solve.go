// SPDX-License-Identifier: MIT

// Package geodesic - orchestrator.
//
// Solve is the single entry point: classify once, route to the regime's
// generator through an exhaustive switch, then anchor the angles on θ0.

package geodesic

import (
	"fmt"
	"math"
)

// generator is the common capability of the three regime builders: produce
// the raw (radius, angle) samples of a path. Angles are anchored by Solve.
type generator interface {
	path(ray RayState, cls Classification, stop float64, n int) (segment, error)
}

// Solver traces geodesics under an immutable configuration. The zero value
// is not usable; build one with NewSolver.
type Solver struct {
	opts Options
}

// NewSolver builds a Solver from the defaults plus opts.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve traces the photon described by ray.
//
// Inputs:
//   - ray     — initial condition; R0 > 2.
//   - stop    — stop radius, or turn count for critical inward rays; a
//     negative radius on a supercritical inward ray passes periastron
//     (see package doc).
//   - samples — number of path samples, ≥ MinSamples.
//
// Returns a Trajectory whose Path has exactly samples points and starts at
// (R0, Theta0).
//
// Errors: ErrNonFinite, ErrDegenerateGeometry, ErrInvalidStopTarget,
// ErrUndefinedDirection, ErrTooFewSamples (all wrapped with context).
//
// Complexity: O(samples).
func (s *Solver) Solve(ray RayState, stop float64, samples int) (Trajectory, error) {
	if err := s.validateSamples(samples); err != nil {
		return Trajectory{}, err
	}
	if err := validateFinite("stop", stop); err != nil {
		return Trajectory{}, err
	}

	cls, err := s.Classify(ray)
	if err != nil {
		return Trajectory{}, err
	}

	seg, err := s.generatorFor(cls.Regime).path(ray, cls, stop, samples)
	if err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w", cls.Regime, err)
	}
	if seg.len() != samples {
		// Every generator allocates exactly samples points.
		panic(fmt.Sprintf("geodesic: %s generator produced %d samples, want %d", cls.Regime, seg.len(), samples))
	}

	return Trajectory{
		Regime:     cls.Regime,
		Impact:     cls.Impact,
		Periastron: cls.Periastron(),
		Direction:  cls.Direction,
		Path:       anchor(seg, ray.Theta0),
	}, nil
}

// generatorFor maps a regime to its builder. Regime is closed: an unknown
// value is a programmer error.
func (s *Solver) generatorFor(r Regime) generator {
	switch r {
	case Supercritical:
		return supercritical{tol: s.opts.tol}
	case Subcritical:
		return subcritical{tol: s.opts.tol}
	case Critical:
		return critical{tol: s.opts.tol}
	default:
		panic(fmt.Sprintf("geodesic: unknown regime %d", int(r)))
	}
}

var defaultSolver = NewSolver()

// Solve is the functional entry point on a default Solver:
//
//	solve_geodesic(r0, θ0, δ0, stopOrTurns, samples) → [(r, θ)]
func Solve(r0, theta0, delta0, stopOrTurns float64, samples int) (Path, error) {
	tr, err := defaultSolver.Solve(RayState{R0: r0, Theta0: theta0, Delta0: delta0}, stopOrTurns, samples)
	if err != nil {
		return nil, err
	}

	return tr.Path, nil
}

// validateSamples enforces samples ≥ MinSamples.
func (s *Solver) validateSamples(n int) error {
	if n < s.opts.minSamples {
		return fmt.Errorf("samples=%d below minimum %d: %w", n, s.opts.minSamples, ErrTooFewSamples)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrNonFinite)
	}

	return nil
}
