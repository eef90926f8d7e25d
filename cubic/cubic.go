// SPDX-License-Identifier: MIT

package cubic

import (
	"math"
	"sort"
)

// Roots returns the real roots of f(u) = 2·M·u³ − u² + 1/D² in ascending
// order. opts may be nil, in which case DefaultOptions is used.
//
// Algorithm outline:
//  1. Validate d and mass (finite, non-zero).
//  2. Depress the cubic with u = t + ofs, ofs = 1/(6M):
//     p = −1/(12M²), q = (1/(2D²) − 1/(108M²))/M.
//  3. Classify by Δ = D² − 27M² (see Classify) and solve:
//     OneReal    — t = ∛(−q/2 + δ) + ∛(−q/2 − δ), δ = √(q²/4 + p³/27).
//     Degenerate — u ∈ {−ofs, 2·ofs}.
//     ThreeReal  — t_k = 2·p₃·cos(θ − 2πk/3), p₃ = √(−p/3),
//     θ = arccos(1.5·q/(p·p₃))/3.
//  4. Add ofs and sort ascending.
//
// Returns:
//   - one root for OneReal, two for Degenerate (simple root first), three
//     for ThreeReal.
//
// Errors:
//   - ErrZeroImpact if d is zero or not finite.
//   - ErrZeroMass if mass is zero or not finite.
//
// Complexity: O(1).
func Roots(d, mass float64, opts *Options) ([]float64, error) {
	if err := validate(d, mass); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var (
		p   = -1 / (12 * mass * mass)
		q   = (0.5/(d*d) - 1/(108*mass*mass)) / mass
		ofs = 1 / (6 * mass)
	)

	switch classify(d, mass, o.Tolerance) {
	case OneReal:
		delta := math.Sqrt(math.Max(0, (4*p*p*p+27*q*q)/3)) / 6
		aa := math.Cbrt(-q/2 + delta)
		bb := math.Cbrt(-q/2 - delta)

		return []float64{aa + bb + ofs}, nil

	case Degenerate:
		return []float64{-ofs, 2 * ofs}, nil

	default:
		p3 := math.Sqrt(-p / 3)
		theta := math.Acos(clampUnit(1.5*q/(p*p3))) / 3
		rr := []float64{
			2*p3*math.Cos(theta) + ofs,
			2*p3*math.Cos(theta-2*math.Pi/3) + ofs,
			2*p3*math.Cos(theta-4*math.Pi/3) + ofs,
		}
		sort.Float64s(rr)

		return rr, nil
	}
}

// Classify reports which root structure Roots would produce for (d, mass)
// under the given tolerance. Invalid inputs yield the matching sentinel.
func Classify(d, mass, tol float64) (Kind, error) {
	if err := validate(d, mass); err != nil {
		return 0, err
	}

	return classify(d, mass, tol), nil
}

// Eval evaluates f(u) = 2·M·u³ − u² + 1/D². No validation is performed;
// d == 0 yields +Inf.
func Eval(u, d, mass float64) float64 {
	return 2*mass*u*u*u - u*u + 1/(d*d)
}

// classify compares Δ = D² − 27M² against the relative band tol·27M².
func classify(d, mass, tol float64) Kind {
	scale := 27 * mass * mass
	discrim := d*d - scale
	if tol < 0 {
		tol = 0
	}
	switch {
	case math.Abs(discrim) <= tol*scale:
		return Degenerate
	case discrim < 0:
		return OneReal
	default:
		return ThreeReal
	}
}

func validate(d, mass float64) error {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrZeroImpact
	}
	if mass == 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return ErrZeroMass
	}

	return nil
}

// clampUnit keeps an arccos argument inside [−1, 1]; rounding near Δ = 0
// can push it a few ulps outside.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
