// SPDX-License-Identifier: MIT

package cubic

import "errors"

var (
	// ErrZeroImpact indicates an impact parameter that is zero, NaN or ±Inf.
	// The constant term 1/D² of the cubic is undefined in that case.
	ErrZeroImpact = errors.New("cubic: impact parameter must be finite and non-zero")

	// ErrZeroMass indicates a mass that is zero, NaN or ±Inf.
	ErrZeroMass = errors.New("cubic: mass must be finite and non-zero")
)

// DefaultTolerance is the relative width of the degenerate band around
// Δ = 0, measured against 27·M².
const DefaultTolerance = 1e-12

// Options configures Roots.
//
// Fields:
//   - Tolerance — relative half-width of the Δ ≈ 0 band. Must be ≥ 0;
//     a negative value is treated as zero (strict equality).
type Options struct {
	Tolerance float64
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Kind names the root structure selected by the discriminant.
type Kind int

const (
	// OneReal is the Δ < 0 case.
	OneReal Kind = iota + 1

	// Degenerate is the Δ ≈ 0 case with a double root.
	Degenerate

	// ThreeReal is the Δ > 0 case.
	ThreeReal
)

// String returns a lowercase name for k.
func (k Kind) String() string {
	switch k {
	case OneReal:
		return "one-real"
	case Degenerate:
		return "degenerate"
	case ThreeReal:
		return "three-real"
	default:
		return "unknown"
	}
}
