// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photon/cubic"
)

// ImpactParameter returns D = r0·|sin δ0| / √(1 − 2/r0).
//
// Errors:
//   - ErrNonFinite if r0 or delta0 is NaN or ±Inf.
//   - ErrDegenerateGeometry if r0 ≤ 2 (at or inside the horizon).
func ImpactParameter(r0, delta0 float64) (float64, error) {
	if err := validateFinite("r0", r0); err != nil {
		return 0, err
	}
	if err := validateFinite("delta0", delta0); err != nil {
		return 0, err
	}
	if r0 <= Horizon {
		return 0, fmt.Errorf("r0=%g not outside the horizon r=%g: %w", r0, Horizon, ErrDegenerateGeometry)
	}

	return r0 * math.Abs(math.Sin(delta0)) / math.Sqrt(1-Horizon/r0), nil
}

// Classify derives the impact parameter and direction flags of ray and
// selects its regime by comparing D/D_crit − 1 with ±tol. The turning-point
// roots the regime needs are resolved here, once.
//
// Stages:
//  1. Validate r0 > 2 and finiteness; compute D.
//  2. Reject radial emission (|sin δ0| ≤ tol, D = 0).
//  3. Resolve direction; |cos δ0| ≤ tol is tangential and forces InOut = +1.
//  4. Pick the regime; for Supercritical resolve b3 ≤ b2 ≤ b1 (from the
//     quadratic in r0 when tangential, since r0 is then the periastron),
//     for Subcritical the lone root β.
//  5. Supercritical rays must start at or outside their periastron and
//     the periastron must lie outside the horizon.
//
// Errors: ErrNonFinite, ErrDegenerateGeometry.
func (s *Solver) Classify(ray RayState) (Classification, error) {
	if err := validateFinite("theta0", ray.Theta0); err != nil {
		return Classification{}, err
	}
	d, err := ImpactParameter(ray.R0, ray.Delta0)
	if err != nil {
		return Classification{}, err
	}

	sin, cos := math.Sincos(ray.Delta0)
	if math.Abs(sin) <= s.opts.tol {
		return Classification{}, fmt.Errorf("radial emission delta0=%g has no impact parameter: %w", ray.Delta0, ErrDegenerateGeometry)
	}

	cls := Classification{
		Impact:    d,
		Direction: directionOf(sin, cos, s.opts.tol),
	}

	ratio := d/s.opts.dcrit - 1
	switch {
	case ratio > s.opts.tol:
		cls.Regime = Supercritical
		cls.roots, err = s.scatterRoots(ray.R0, d, cls.Direction.Tangential)
	case ratio < -s.opts.tol:
		cls.Regime = Subcritical
		cls.roots, err = s.captureRoots(d)
	default:
		cls.Regime = Critical
	}
	if err != nil {
		return Classification{}, err
	}

	if cls.Regime == Supercritical {
		if err = s.checkPeriastron(ray.R0, cls.roots); err != nil {
			return Classification{}, err
		}
	}

	return cls, nil
}

// directionOf resolves InOut/UpDn from sin δ0 and cos δ0.
func directionOf(sin, cos, tol float64) Direction {
	dir := Direction{InOut: sign(cos), UpDn: sign(sin)}
	if math.Abs(cos) <= tol {
		dir.InOut = 1
		dir.Tangential = true
	}

	return dir
}

// scatterRoots returns b3, b2, b1 for a supercritical ray.
func (s *Solver) scatterRoots(r0, d float64, tangential bool) ([]float64, error) {
	if !tangential {
		roots, err := s.cubicRoots(d)
		if err != nil {
			return nil, err
		}
		if len(roots) != 3 {
			return nil, fmt.Errorf("D=%g expected 3 real roots, got %d: %w", d, len(roots), ErrDegenerateGeometry)
		}

		return roots, nil
	}

	// Tangential emission: r0 is the periastron, so b2 = 1/r0 and the other
	// two roots follow from f(u)/(u − b2).
	q := math.Sqrt((r0 - 2) * (r0 + 6))

	return []float64{(r0 - 2 - q) / 4 / r0, 1 / r0, (r0 - 2 + q) / 4 / r0}, nil
}

// captureRoots returns the lone real root β for a subcritical ray.
func (s *Solver) captureRoots(d float64) ([]float64, error) {
	roots, err := s.cubicRoots(d)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("D=%g expected 1 real root, got %d: %w", d, len(roots), ErrDegenerateGeometry)
	}

	return roots, nil
}

func (s *Solver) cubicRoots(d float64) ([]float64, error) {
	co := cubic.Options{Tolerance: s.opts.tol}
	roots, err := cubic.Roots(d, Mass, &co)
	if err != nil {
		return nil, fmt.Errorf("turning points for D=%g: %v: %w", d, err, ErrDegenerateGeometry)
	}

	return roots, nil
}

// checkPeriastron enforces b3 ≤ b2 ≤ b1, r_p ≥ 2 and r0 ≥ r_p.
func (s *Solver) checkPeriastron(r0 float64, roots []float64) error {
	b3, b2, b1 := roots[0], roots[1], roots[2]
	if !(b3 <= b2 && b2 <= b1) || b2 <= 0 {
		return fmt.Errorf("r0=%g is not outside the photon sphere (roots %v): %w", r0, roots, ErrDegenerateGeometry)
	}
	peri := 1 / b2
	if peri < Horizon {
		return fmt.Errorf("periastron %g inside the horizon: %w", peri, ErrDegenerateGeometry)
	}
	if r0 < peri*(1-s.opts.tol) {
		return fmt.Errorf("r0=%g inside periastron %g: %w", r0, peri, ErrDegenerateGeometry)
	}

	return nil
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
