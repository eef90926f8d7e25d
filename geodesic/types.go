// SPDX-License-Identifier: MIT

package geodesic

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RayState is the initial condition of a photon.
//
// Fields:
//   - R0     — starting radius, > 2 (horizon at r = 2).
//   - Theta0 — starting polar angle, radians.
//   - Delta0 — local emission angle from the outward radial direction,
//     radians; any real value.
type RayState struct {
	R0     float64 `json:"r0" yaml:"r0"`
	Theta0 float64 `json:"theta0" yaml:"theta0"`
	Delta0 float64 `json:"delta0" yaml:"delta0"`
}

// Regime is the closed set of orbit families selected by the impact
// parameter. The zero value is invalid.
type Regime int

const (
	// Subcritical: D < D_crit, one real root, the photon is captured.
	Subcritical Regime = iota + 1

	// Critical: D = D_crit within tolerance, asymptotic spiral onto r = 3.
	Critical

	// Supercritical: D > D_crit, three real roots, the photon scatters.
	Supercritical
)

// String returns a lowercase regime name.
func (g Regime) String() string {
	switch g {
	case Subcritical:
		return "subcritical"
	case Critical:
		return "critical"
	case Supercritical:
		return "supercritical"
	default:
		return "unknown"
	}
}

// MarshalText encodes the regime by name, so JSON and YAML carry
// "supercritical" rather than 3.
func (g Regime) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Direction holds the emission direction flags.
//
//   - InOut = +1 for outward rays, −1 for inward ones (sign of cos δ0).
//     Tangential emission forces +1.
//   - UpDn  = +1 above the radial line, −1 below (sign of sin δ0).
type Direction struct {
	InOut      int  `json:"inout"`
	UpDn       int  `json:"updn"`
	Tangential bool `json:"tangential"`
}

// Outward reports whether the ray starts moving away from the mass.
func (d Direction) Outward() bool { return d.InOut > 0 }

// Point is one (r, θ) sample on a path.
type Point struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// Path is an ordered sequence of samples; Path[0] is (r0, θ0).
type Path []Point

// Radii returns the radius of every sample.
func (p Path) Radii() []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = p[i].R
	}

	return out
}

// Angles returns the polar angle of every sample.
func (p Path) Angles() []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = p[i].Theta
	}

	return out
}

// Cartesian maps every sample to the plane: x = r·cos θ, y = r·sin θ.
func (p Path) Cartesian() []r2.Vec {
	out := make([]r2.Vec, len(p))
	for i := range p {
		s, c := math.Sincos(p[i].Theta)
		out[i] = r2.Vec{X: p[i].R * c, Y: p[i].R * s}
	}

	return out
}

// MinRadius returns the smallest sampled radius, or NaN for an empty path.
func (p Path) MinRadius() float64 {
	if len(p) == 0 {
		return math.NaN()
	}
	m := p[0].R
	for i := 1; i < len(p); i++ {
		m = math.Min(m, p[i].R)
	}

	return m
}

// Classification is the result of classifying a RayState: the regime chosen
// once, together with everything the regime's generator needs.
type Classification struct {
	Regime    Regime
	Impact    float64 // D
	Direction Direction

	// roots holds the ascending turning-point roots: b3, b2, b1 for
	// Supercritical, beta for Subcritical, nil for Critical.
	roots []float64
}

// Roots returns a copy of the cubic roots used by the regime (ascending).
func (c Classification) Roots() []float64 {
	return append([]float64(nil), c.roots...)
}

// Periastron returns 1/b2 for supercritical rays and 0 otherwise.
func (c Classification) Periastron() float64 {
	if c.Regime != Supercritical || len(c.roots) != 3 {
		return 0
	}

	return 1 / c.roots[1]
}

// Trajectory is the outcome of Solve.
type Trajectory struct {
	Regime     Regime    `json:"regime"`
	Impact     float64   `json:"impact"`
	Periastron float64   `json:"periastron,omitempty"`
	Direction  Direction `json:"direction"`
	Path       Path      `json:"path"`
}
