// SPDX-License-Identifier: MIT

package geodesic

import "math"

// Test bridge for geodesic_test.
//
// Provided surface:
//   - ExportedWithCriticalImpact: moves the regime boundary D_crit. Only
//     classification follows the override; the closed forms still assume
//     M = 1, so it exists to exercise classification edges and the root-count
//     guards, never to trace production rays.

const panicDcritInvalid = "geodesic: ExportedWithCriticalImpact: d must be finite, > 0"

// ExportedWithCriticalImpact overrides D_crit used to select the regime.
//
// Panics if d is not finite or d <= 0.
func ExportedWithCriticalImpact(d float64) Option {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		panic(panicDcritInvalid)
	}

	return func(o *Options) { o.dcrit = d }
}
