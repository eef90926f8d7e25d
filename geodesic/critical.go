// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"
	"math"
)

// critical builds paths at D = D_crit from Chandrasekhar's (1983) eq. 231:
//
//	u(θ) = ½·tanh²((θ − θref)/2) − 1/6,
//
// with θref = −2·artanh √(2(1/r0 + 1/6)) so that u(0) = 1/r0. The closed
// form is the exterior branch (r > 3); as θ grows u tends to 1/3 and the
// photon winds onto the r = 3 orbit.
//
// stop is a radius for outward rays and a number of turns for inward ones.
type critical struct {
	tol float64
}

func (g critical) path(ray RayState, cls Classification, stop float64, n int) (segment, error) {
	dir := cls.Direction
	if dir.Tangential || (dir.InOut != 1 && dir.InOut != -1) {
		return segment{}, fmt.Errorf("critical orbit at r0=%g with delta0=%g: %w", ray.R0, ray.Delta0, ErrUndefinedDirection)
	}
	if ray.R0 <= PhotonSphere {
		return segment{}, fmt.Errorf("critical orbit needs r0 > %g, got %g: %w", PhotonSphere, ray.R0, ErrDegenerateGeometry)
	}

	ref := -2 * math.Atanh(math.Sqrt(2*(1/ray.R0+1.0/6)))

	var sweep float64
	if dir.Outward() {
		if stop < ray.R0*(1-g.tol) {
			return segment{}, fmt.Errorf("outward critical ray from r0=%g cannot stop at %g: %w", ray.R0, stop, ErrInvalidStopTarget)
		}
		sweep = ref + 2*math.Atanh(math.Sqrt(2*(1/stop+1.0/6)))
	} else {
		if stop <= 0 {
			return segment{}, fmt.Errorf("inward critical ray needs a positive turn count, got %g: %w", stop, ErrInvalidStopTarget)
		}
		sweep = stop * 2 * math.Pi
	}

	var (
		thetas = linspace(0, sweep, n, true)
		flip   = -float64(dir.InOut * dir.UpDn)
	)

	return segment{
		label:  segSweep,
		radii:  mapSlice(thetas, func(th float64) float64 { return 1 / criticalU(th, ref) }),
		angles: mapSlice(thetas, func(th float64) float64 { return flip * th }),
	}, nil
}

// criticalU is u(θ) on the critical orbit with reference angle ref.
func criticalU(theta, ref float64) float64 {
	t := math.Tanh((theta - ref) / 2)

	return 0.5*t*t - 1.0/6
}
