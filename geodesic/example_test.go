// SPDX-License-Identifier: MIT
package geodesic_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/photon/geodesic"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A photon leaves r0 = 6, θ0 = 70°, at δ0 = −43° from the outward radial
//	direction, and is followed out to r = 9 with 500 samples.
//
// D ≈ 5.0116 < √27: the ray is subcritical, so the path is a single sweep.
func ExampleSolve() {
	path, err := geodesic.Solve(6, 70*math.Pi/180, -43*math.Pi/180, 9, 500)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	first, last := path[0], path[len(path)-1]
	fmt.Printf("samples=%d\n", len(path))
	fmt.Printf("start r=%.4f θ=%.4f\n", first.R, first.Theta)
	fmt.Printf("end   r=%.4f θ=%.4f\n", last.R, last.Theta)
	// Output:
	// samples=500
	// start r=6.0000 θ=1.2217
	// end   r=9.0000 θ=0.8748
}

// ExampleSolver_Solve follows the reversed δ0 = −47° ray inward, through
// its periastron, and back out to r = 9 (negative stop radius).
func ExampleSolver_Solve() {
	s := geodesic.NewSolver(geodesic.WithMinSamples(2))
	ray := geodesic.RayState{R0: 6, Theta0: 70 * math.Pi / 180, Delta0: -47*math.Pi/180 + math.Pi}

	tr, err := s.Solve(ray, -9, 500)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	last := tr.Path[len(tr.Path)-1]
	fmt.Println("regime:", tr.Regime)
	fmt.Printf("D=%.4f periastron=%.4f\n", tr.Impact, tr.Periastron)
	fmt.Printf("closest=%.4f end r=%.4f θ=%.4f\n", tr.Path.MinRadius(), last.R, last.Theta)
	// Output:
	// regime: supercritical
	// D=5.3743 periastron=3.5534
	// closest=3.5534 end r=9.0000 θ=5.7569
}

// ExampleSolver_Solve_invalidStop shows the typed failure for a stop radius
// beyond the turning point.
func ExampleSolver_Solve_invalidStop() {
	ray := geodesic.RayState{R0: 6, Theta0: 0, Delta0: -47*math.Pi/180 + math.Pi}
	_, err := geodesic.NewSolver().Solve(ray, 3, 100)
	fmt.Println(errors.Is(err, geodesic.ErrInvalidStopTarget))
	// Output:
	// true
}
