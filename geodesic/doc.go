// SPDX-License-Identifier: MIT

// Package geodesic traces photon paths (null geodesics) in Schwarzschild
// spacetime in closed form, through elliptic integrals, instead of stepping
// the geodesic ODE.
//
// Units: G = c = M = 1, so the horizon sits at r = 2 and the unstable
// circular photon orbit at r = 3. Angles are radians.
//
// 🚀 What does it compute?
//
//	Given a starting radius r0 > 2, a starting polar angle θ0 and a local
//	emission angle δ0 (measured from the outward radial direction), Solve
//	returns a Path of (r, θ) samples lying exactly on the geodesic.
//
// The impact parameter D = r0·|sin δ0| / √(1 − 2/r0) picks one of three
// regimes relative to D_crit = √27:
//
//   - Supercritical (D > D_crit) — the photon scatters. Inward rays pass a
//     periastron r_p = 1/b₂ and may be stitched around it (see segment.go).
//   - Subcritical   (D < D_crit) — the photon is captured; no turning point.
//   - Critical      (D = D_crit) — the photon spirals asymptotically onto
//     the r = 3 photon orbit.
//
// The meaning of the stop argument depends on the regime and direction:
//
//   - a radius for every outward ray and every non-critical inward ray;
//     a negative radius on a supercritical inward ray asks the path to pass
//     through periastron and come back out to |stop|;
//   - a number of turns (2π each) for a critical inward ray.
//
// ⚙️ Usage:
//
//	s := geodesic.NewSolver(geodesic.WithMinSamples(2))
//	tr, err := s.Solve(geodesic.RayState{R0: 6, Theta0: 1.2217, Delta0: -0.8203}, 9, 500)
//	if errors.Is(err, geodesic.ErrInvalidStopTarget) {
//		// the stop radius lies beyond the turning point
//	}
//	fmt.Println(tr.Regime, tr.Path[0])
//
// Every path starts exactly at (r0, θ0): the angle sequence is rotated by a
// constant so that its first element equals θ0.
//
// Concurrency: a Solver is immutable; Solve is pure and safe to call from
// many goroutines at once.
package geodesic
