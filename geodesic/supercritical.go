// SPDX-License-Identifier: MIT

package geodesic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/photon/elliptic"
)

// scatterOrbit is the closed form of a D > D_crit geodesic with roots
// b3 < b2 < b1 of f(u). The accumulated angle from periastron to radius r is
//
//	Φ(r) = CC · F(φ(r) | m),  φ(r) = arcsin √((b2 − u)/(b1 − u)/m),  u = 1/r,
//
// with m = (b2 − b3)/(b1 − b3) and CC = √(2/(b1 − b3)).
type scatterOrbit struct {
	b1, b2, b3 float64
	m, cc      float64
}

func newScatterOrbit(roots []float64) scatterOrbit {
	b3, b2, b1 := roots[0], roots[1], roots[2]

	return scatterOrbit{
		b1: b1, b2: b2, b3: b3,
		m:  (b2 - b3) / (b1 - b3),
		cc: math.Sqrt(2 / (b1 - b3)),
	}
}

func (o scatterOrbit) periastron() float64 { return 1 / o.b2 }

// angle returns Φ(r) ≥ 0. The radicand is clamped to [0, 1] so samples
// placed on periastron by rounding land on φ = 0.
func (o scatterOrbit) angle(r float64) float64 {
	u := 1 / r
	x := (o.b2 - u) / (o.b1 - u) / o.m
	x = math.Max(0, math.Min(1, x))

	return o.cc * elliptic.F(math.Asin(math.Sqrt(x)), o.m)
}

// sweep samples Φ over radii and scales it by sgn (±1).
func (o scatterOrbit) sweep(label string, radii []float64, sgn float64) segment {
	return segment{
		label:  label,
		radii:  radii,
		angles: mapSlice(radii, func(r float64) float64 { return sgn * o.angle(r) }),
	}
}

// supercritical builds scattered paths (D > D_crit).
type supercritical struct {
	tol float64
}

// path dispatches on direction and, for inward rays, on the stop radius
// relative to periastron r_p:
//
//	outward            — one sweep r0 → stop (stop ≥ r0).
//	|stop| < r_p       — ErrInvalidStopTarget.
//	stop ≥ r_p         — one sweep r0 → stop, same side of periastron.
//	stop ≤ −r_p, |stop| = r0 — symmetric round trip (roundTrip).
//	stop ≤ −r_p, |stop| ≠ r0 — asymmetric excursion (excursion).
//
// A stop of exactly −r_p (within tolerance) is a sweep onto periastron.
func (g supercritical) path(ray RayState, cls Classification, stop float64, n int) (segment, error) {
	orb := newScatterOrbit(cls.roots)
	updn := float64(cls.Direction.UpDn)

	if cls.Direction.Outward() {
		if stop < ray.R0*(1-g.tol) {
			return segment{}, fmt.Errorf("outward ray from r0=%g cannot stop at %g: %w", ray.R0, stop, ErrInvalidStopTarget)
		}

		return orb.sweep(segSweep, linspace(ray.R0, stop, n, true), updn), nil
	}

	peri := orb.periastron()
	rf := math.Abs(stop)
	switch {
	case rf < peri*(1-g.tol):
		return segment{}, fmt.Errorf("|stop|=%g below periastron %g: %w", rf, peri, ErrInvalidStopTarget)

	case stop > 0 || rf <= peri*(1+g.tol):
		if rf > ray.R0*(1+g.tol) {
			return segment{}, fmt.Errorf("inward ray from r0=%g cannot stop at %g before periastron: %w", ray.R0, rf, ErrInvalidStopTarget)
		}

		return orb.sweep(segSweep, linspace(ray.R0, rf, n, true), -updn), nil

	case math.Abs(ray.R0-rf) <= g.tol*ray.R0:
		return g.roundTrip(orb, ray.R0, n, -updn)

	default:
		return g.excursion(orb, ray.R0, rf, n, -updn)
	}
}

// roundTrip covers r0 → r_p → r0. The inbound half is mirrored to build the
// outbound half.
//
//   - even n: n/2 inbound samples with r_p excluded; no sample on r_p.
//   - odd n:  (n−1)/2 inbound samples ending on r_p, then one extra r_p
//     sample with zero angle.
func (g supercritical) roundTrip(orb scatterOrbit, r0 float64, n int, sgn float64) (segment, error) {
	if n < 2 {
		return segment{}, fmt.Errorf("round trip through periastron needs >= 2 samples, got %d: %w", n, ErrTooFewSamples)
	}
	peri := orb.periastron()

	if n%2 == 0 {
		in := orb.sweep(segNearIn, linspace(r0, peri, n/2, false), sgn)

		return stitch(in, in.mirror(segNearOut)), nil
	}

	in := orb.sweep(segNearIn, linspace(r0, peri, (n-1)/2, true), sgn)

	return stitch(in, point(segPeriastron, peri, 0), in.mirror(segNearOut)), nil
}

// excursion covers r0 → r_p → rf with r0 ≠ rf. With r_in = min(r0, rf),
// r_out = max(r0, rf) and r_exc = r0 + rf − 2·r_p:
//
//	n_in  = min(⌊n·(r_in − r_p)/r_exc⌋, ⌊(n−2)/2⌋)  samples on r_in → r_p
//	        (mirrored back out),
//	1     sample on r_p,
//	n_out = n − 2·n_in − 1          samples on r_out → r_in.
//
// Order when r0 > rf: far-inbound, near-inbound, periastron, near-outbound.
// Order when r0 < rf: near-inbound, periastron, near-outbound, far-outbound.
// Both n_in and n_out must be ≥ 1 so the path starts at r0 and ends at rf;
// the cap keeps n_out ≥ 1 whenever n ≥ 3.
func (g supercritical) excursion(orb scatterOrbit, r0, rf float64, n int, sgn float64) (segment, error) {
	peri := orb.periastron()
	rIn, rOut := math.Min(r0, rf), math.Max(r0, rf)
	rExc := r0 + rf - 2*peri

	nIn := int(float64(n) * (rIn - peri) / rExc)
	if n >= 3 {
		// |stop| ≈ r0 with odd n rounds n_in up to (n−1)/2.
		nIn = min(nIn, (n-2)/2)
	}
	nOut := n - 2*nIn - 1
	if nIn < 1 || nOut < 1 {
		return segment{}, fmt.Errorf("excursion %g→%g→%g with %d samples leaves n_in=%d, n_out=%d: %w",
			r0, peri, rf, n, nIn, nOut, ErrTooFewSamples)
	}

	far := orb.sweep(segFarIn, linspace(rOut, rIn, nOut, false), sgn)
	nearIn := orb.sweep(segNearIn, linspace(rIn, peri, nIn, false), sgn)
	nearOut := nearIn.mirror(segNearOut)
	turn := point(segPeriastron, peri, 0)

	if r0 > rf {
		return stitch(far, nearIn, turn, nearOut), nil
	}

	return stitch(nearIn, turn, nearOut, far.mirror(segFarOut)), nil
}
