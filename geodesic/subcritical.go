// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photon/elliptic"
)

// subcritical builds captured paths (D < D_crit). f(u) has one real root β
// and the reduction of A&S 17.4.70–71 gives
//
//	λ = √(β(3β − 1)),  m = 1/2 − (6β − 1)/(8λ),
//	φ(u) = arccos((λ − u + β)/(λ + u − β)),
//	θ(u) = inout·updn·(F(φ(u0)|m) − F(φ(u)|m))/√(2λ).
//
// φ spans [0, π]; elliptic.F handles amplitudes past π/2. There is no
// turning point, so every path is one monotonic sweep r0 → stop.
type subcritical struct {
	tol float64
}

func (g subcritical) path(ray RayState, cls Classification, stop float64, n int) (segment, error) {
	if stop <= 0 {
		return segment{}, fmt.Errorf("stop radius %g must be positive: %w", stop, ErrInvalidStopTarget)
	}
	outward := cls.Direction.Outward()
	if outward && stop < ray.R0*(1-g.tol) {
		return segment{}, fmt.Errorf("outward ray from r0=%g cannot stop at %g: %w", ray.R0, stop, ErrInvalidStopTarget)
	}
	if !outward && stop > ray.R0*(1+g.tol) {
		return segment{}, fmt.Errorf("inward ray from r0=%g cannot stop at %g: %w", ray.R0, stop, ErrInvalidStopTarget)
	}

	beta := cls.roots[0]
	lambda2 := math.Sqrt(beta * (3*beta - 1))
	m := 0.5 - 0.125*(6*beta-1)/lambda2
	amp := func(u float64) float64 {
		return math.Acos(math.Max(-1, math.Min(1, (lambda2-u+beta)/(lambda2+u-beta))))
	}

	var (
		fs    = elliptic.F(amp(1/ray.R0), m)
		scale = float64(cls.Direction.InOut*cls.Direction.UpDn) / math.Sqrt(2*lambda2)
		radii = linspace(ray.R0, stop, n, true)
	)

	return segment{
		label:  segSweep,
		radii:  radii,
		angles: mapSlice(radii, func(r float64) float64 { return scale * (fs - elliptic.F(amp(1/r), m)) }),
	}, nil
}
