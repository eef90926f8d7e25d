// SPDX-License-Identifier: MIT

// Package cubic resolves the real roots of the turning-point cubic of a
// Schwarzschild null geodesic,
//
//	f(u) = 2·M·u³ − u² + 1/D²,
//
// where u = 1/r, D is the photon's impact parameter and M the central mass.
//
// The cubic is depressed with u = t + 1/(6M) and classified by the sign of
// the discriminant Δ = D² − 27·M²:
//
//   - Δ < 0 — one real root (Cardano's formula). The photon is captured.
//   - Δ ≈ 0 — a simple root −1/(6M) and a double root 1/(3M); |Δ| below
//     Tolerance·27·M² falls into this band. The unstable photon orbit.
//   - Δ > 0 — three real roots (trigonometric/Chebyshev method). The photon
//     scatters off a periastron at r = 1/b₂.
//
// Roots are always returned in ascending order, so callers index the two
// largest as b₂ = roots[len-2] and b₁ = roots[len-1].
//
// Usage:
//
//	roots, err := cubic.Roots(7.0, 1.0, nil)
//	if err != nil {
//		// ErrZeroImpact or ErrZeroMass
//	}
//	b3, b2, b1 := roots[0], roots[1], roots[2]
//
// Complexity: O(1) time and memory.
package cubic
