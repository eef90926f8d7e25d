// SPDX-License-Identifier: MIT
package geodesic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photon/cubic"
	"github.com/katalvlaran/photon/geodesic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

// TestImpactParameter checks the closed form and its guards.
func TestImpactParameter(t *testing.T) {
	d, err := geodesic.ImpactParameter(6, deg(-45))
	require.NoError(t, err)
	assert.InDelta(t, geodesic.CriticalImpact, d, 1e-12, "r0=6, δ0=45° is the critical ray")

	d, err = geodesic.ImpactParameter(6, deg(90))
	require.NoError(t, err)
	assert.InDelta(t, 6/math.Sqrt(2.0/3), d, 1e-12)

	_, err = geodesic.ImpactParameter(2, 1)
	assert.ErrorIs(t, err, geodesic.ErrDegenerateGeometry)
	_, err = geodesic.ImpactParameter(1.5, 1)
	assert.ErrorIs(t, err, geodesic.ErrDegenerateGeometry)
	_, err = geodesic.ImpactParameter(math.NaN(), 1)
	assert.ErrorIs(t, err, geodesic.ErrNonFinite)
	_, err = geodesic.ImpactParameter(6, math.Inf(-1))
	assert.ErrorIs(t, err, geodesic.ErrNonFinite)
}

// TestClassify_Regimes checks the regime and direction flags of the three
// reference rays at r0 = 6.
func TestClassify_Regimes(t *testing.T) {
	s := geodesic.NewSolver()
	cases := []struct {
		name   string
		delta0 float64
		regime geodesic.Regime
		roots  int
		dir    geodesic.Direction
	}{
		{"Captured_-43", deg(-43), geodesic.Subcritical, 1, geodesic.Direction{InOut: 1, UpDn: -1}},
		{"Critical_-45", deg(-45), geodesic.Critical, 0, geodesic.Direction{InOut: 1, UpDn: -1}},
		{"Scattered_-47", deg(-47), geodesic.Supercritical, 3, geodesic.Direction{InOut: 1, UpDn: -1}},
		{"ScatteredInward_133", deg(-47) + math.Pi, geodesic.Supercritical, 3, geodesic.Direction{InOut: -1, UpDn: 1}},
		{"CapturedInward_137", deg(-43) + math.Pi, geodesic.Subcritical, 1, geodesic.Direction{InOut: -1, UpDn: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls, err := s.Classify(geodesic.RayState{R0: 6, Theta0: 0, Delta0: tc.delta0})
			require.NoError(t, err)
			assert.Equal(t, tc.regime, cls.Regime)
			assert.Len(t, cls.Roots(), tc.roots)
			assert.Equal(t, tc.dir, cls.Direction)
		})
	}
}

// TestClassify_SupercriticalRootsMatchCubic checks the roots handed to the
// generator satisfy the cubic, and the periastron is 1/b2.
func TestClassify_SupercriticalRootsMatchCubic(t *testing.T) {
	s := geodesic.NewSolver()
	cls, err := s.Classify(geodesic.RayState{R0: 6, Delta0: deg(-47)})
	require.NoError(t, err)

	roots := cls.Roots()
	require.Len(t, roots, 3)
	for _, u := range roots {
		assert.InDelta(t, 0, cubic.Eval(u, cls.Impact, geodesic.Mass), 1e-9)
	}
	assert.InDelta(t, 1/roots[1], cls.Periastron(), 1e-15)
	assert.Greater(t, cls.Periastron(), geodesic.PhotonSphere)
	assert.Less(t, cls.Periastron(), 6.0)
}

// TestClassify_Tangential checks the quadratic-in-r0 roots: r0 is the
// periastron and all three roots satisfy the cubic.
func TestClassify_Tangential(t *testing.T) {
	s := geodesic.NewSolver()
	for _, r0 := range []float64{3.5, 6, 20} {
		cls, err := s.Classify(geodesic.RayState{R0: r0, Delta0: math.Pi / 2})
		require.NoError(t, err)
		assert.Equal(t, geodesic.Supercritical, cls.Regime)
		assert.True(t, cls.Direction.Tangential)
		assert.Equal(t, 1, cls.Direction.InOut)
		assert.InDelta(t, r0, cls.Periastron(), 1e-12)
		for _, u := range cls.Roots() {
			assert.InDelta(t, 0, cubic.Eval(u, cls.Impact, geodesic.Mass), 1e-9, "r0=%g u=%g", r0, u)
		}
	}
}

// TestClassify_Degenerate covers the geometry guards.
func TestClassify_Degenerate(t *testing.T) {
	s := geodesic.NewSolver()
	cases := []struct {
		name string
		ray  geodesic.RayState
		err  error
	}{
		{"AtHorizon", geodesic.RayState{R0: 2, Delta0: 1}, geodesic.ErrDegenerateGeometry},
		{"RadialOut", geodesic.RayState{R0: 6, Delta0: 0}, geodesic.ErrDegenerateGeometry},
		{"RadialIn", geodesic.RayState{R0: 6, Delta0: math.Pi}, geodesic.ErrDegenerateGeometry},
		// tangential inside the photon sphere sits at an apoastron
		{"TangentialInsidePhotonSphere", geodesic.RayState{R0: 2.5, Delta0: math.Pi / 2}, geodesic.ErrDegenerateGeometry},
		// D > Dcrit but r0 below the periastron
		{"InsideBarrier", geodesic.RayState{R0: 2.5, Delta0: deg(80)}, geodesic.ErrDegenerateGeometry},
		{"NaNTheta", geodesic.RayState{R0: 6, Theta0: math.NaN(), Delta0: 1}, geodesic.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Classify(tc.ray)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRegime_String checks the names and text encoding.
func TestRegime_String(t *testing.T) {
	assert.Equal(t, "subcritical", geodesic.Subcritical.String())
	assert.Equal(t, "critical", geodesic.Critical.String())
	assert.Equal(t, "supercritical", geodesic.Supercritical.String())
	assert.Equal(t, "unknown", geodesic.Regime(0).String())

	b, err := geodesic.Supercritical.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "supercritical", string(b))
}
