// SPDX-License-Identifier: MIT

// Package elliptic evaluates Legendre's incomplete elliptic integral of the
// first kind in the parameter convention (m = k²):
//
//	F(φ|m) = ∫₀^φ dθ / √(1 − m·sin²θ)
//
// gonum's mathext.EllipticF covers φ ∈ [−π/2, π/2]. F here accepts any real
// amplitude through the quasi-periodicity F(φ + jπ|m) = F(φ|m) + 2j·K(m),
// which the subcritical geodesic needs because its amplitude comes from an
// arccos and spans [0, π].
package elliptic

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// F returns the incomplete elliptic integral of the first kind F(φ|m).
//
// Contracts:
//   - 0 ≤ m ≤ 1; otherwise NaN.
//   - m == 1 is accepted only for |φ| < π/2 (K(1) diverges); larger
//     amplitudes return ±Inf.
//   - NaN inputs propagate.
func F(phi, m float64) float64 {
	if math.IsNaN(phi) || math.IsNaN(m) || m < 0 || m > 1 {
		return math.NaN()
	}
	if phi == 0 {
		return 0
	}

	// Reduce to φr ∈ [−π/2, π/2] and count half periods.
	j := math.Round(phi / math.Pi)
	phiR := clampHalfPi(phi - j*math.Pi)

	base := mathext.EllipticF(phiR, m)
	if j == 0 {
		return base
	}

	return base + 2*j*K(m)
}

// K returns the complete elliptic integral of the first kind K(m) = F(π/2|m),
// expressed through Carlson's symmetric form R_F(0, 1−m, 1).
func K(m float64) float64 {
	if math.IsNaN(m) || m < 0 || m > 1 {
		return math.NaN()
	}
	if m == 1 {
		return math.Inf(1)
	}

	return mathext.EllipticRF(0, 1-m, 1)
}

func clampHalfPi(x float64) float64 {
	return math.Max(-math.Pi/2, math.Min(math.Pi/2, x))
}
