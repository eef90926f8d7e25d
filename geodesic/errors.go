// SPDX-License-Identifier: MIT

package geodesic

import "errors"

// Every failure below is a permanent input-validation failure: the solver is
// deterministic, so retrying with the same input yields the same error.
// Sentinels are wrapped once with context (fmt.Errorf("...: %w", ErrX));
// match them with errors.Is.
var (
	// ErrInvalidStopTarget indicates the stop radius (or turn count) cannot
	// be reached along this geodesic, e.g. an inward stop radius inside the
	// periastron, or an outward stop radius below r0.
	ErrInvalidStopTarget = errors.New("geodesic: stop target unreachable along this geodesic")

	// ErrUndefinedDirection indicates the in/out direction cannot be resolved,
	// e.g. exactly tangential emission on the critical orbit.
	ErrUndefinedDirection = errors.New("geodesic: undefined emission direction")

	// ErrDegenerateGeometry indicates r0 ≤ 2, radial emission (D = 0), or a
	// start point where the exterior closed form does not apply.
	ErrDegenerateGeometry = errors.New("geodesic: degenerate geometry")

	// ErrTooFewSamples indicates the sample count is below the configured
	// minimum or too small to cover every segment of a stitched path.
	ErrTooFewSamples = errors.New("geodesic: too few samples")

	// ErrNonFinite indicates a NaN or ±Inf input.
	ErrNonFinite = errors.New("geodesic: NaN or Inf input")
)
