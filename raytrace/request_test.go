// SPDX-License-Identifier: MIT
package raytrace_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/photon/geodesic"
	"github.com/katalvlaran/photon/raytrace"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

// TestRequest_RayState checks the Cartesian → polar conversion.
func TestRequest_RayState(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		r0, th float64
	}{
		{"PositiveX", 6, 0, 6, 0},
		{"PositiveY", 0, 6, 6, math.Pi / 2},
		{"NegativeX", -4, 0, 4, math.Pi},
		{"Diagonal", 3, -4, 5, math.Atan2(-4, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ray := raytrace.Request{X: tc.x, Y: tc.y, Delta0: 0.3}.RayState()
			assert.InDelta(t, tc.r0, ray.R0, 1e-12)
			assert.InDelta(t, tc.th, ray.Theta0, 1e-12)
			assert.Equal(t, 0.3, ray.Delta0)
		})
	}
}

// TestFromRayState checks the polar start survives the trip through (x, y).
func TestFromRayState(t *testing.T) {
	in := geodesic.RayState{R0: 6, Theta0: deg(70), Delta0: deg(-43)}
	req := raytrace.FromRayState(in, 9, 500)

	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.Equal(t, 9.0, req.Stop)
	assert.Equal(t, 500, req.Samples)

	out := req.RayState()
	assert.InDelta(t, in.R0, out.R0, 1e-12)
	assert.InDelta(t, in.Theta0, out.Theta0, 1e-12)
	assert.Equal(t, in.Delta0, out.Delta0)
}

// TestRequest_Validate covers the field and struct-level rules.
func TestRequest_Validate(t *testing.T) {
	valid := raytrace.NewRequest(6, 0, deg(-43), 9, 500)
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		mut  func(r *raytrace.Request)
	}{
		{"NaNX", func(r *raytrace.Request) { r.X = math.NaN() }},
		{"InfY", func(r *raytrace.Request) { r.Y = math.Inf(1) }},
		{"InfDelta", func(r *raytrace.Request) { r.Delta0 = math.Inf(-1) }},
		{"ZeroStop", func(r *raytrace.Request) { r.Stop = 0 }},
		{"NaNStop", func(r *raytrace.Request) { r.Stop = math.NaN() }},
		{"ZeroSamples", func(r *raytrace.Request) { r.Samples = 0 }},
		{"InsideHorizon", func(r *raytrace.Request) { r.X, r.Y = 1, 1 }},
		{"OnHorizon", func(r *raytrace.Request) { r.X, r.Y = 0, 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mut(&r)
			assert.ErrorIs(t, r.Validate(), raytrace.ErrInvalidRequest)
		})
	}
}

// TestPosition_Apply checks the emitter offset is added without touching
// the input slice.
func TestPosition_Apply(t *testing.T) {
	reqs := []raytrace.Request{
		raytrace.NewRequest(6, 0, 0.1, 9, 10),
		raytrace.NewRequest(0, 6, -0.2, 9, 10),
	}
	out := raytrace.Position{Delta: 0.5}.Apply(reqs)

	require.Len(t, out, 2)
	assert.InDelta(t, 0.6, out[0].Delta0, 1e-15)
	assert.InDelta(t, 0.3, out[1].Delta0, 1e-15)
	assert.Equal(t, reqs[0].ID, out[0].ID)
	assert.Equal(t, 0.1, reqs[0].Delta0, "input must not change")

	same := raytrace.Position{}.Apply(reqs)
	assert.Equal(t, reqs, same)
}
