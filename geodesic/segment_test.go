// SPDX-License-Identifier: MIT
package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// linspace
//----------------------------------------------------------------------------//

// TestLinspace covers endpoint handling and degenerate counts.
func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{}, linspace(0, 1, 0, true))
	assert.Equal(t, []float64{3}, linspace(3, 7, 1, true))
	assert.Equal(t, []float64{0, 0.5, 1}, linspace(0, 1, 3, true))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, linspace(0, 1, 4, false))
	assert.Equal(t, []float64{2}, linspace(2, 4, 1, false))
	assert.Equal(t, []float64{9, 8, 7}, linspace(9, 6, 3, false))
}

//----------------------------------------------------------------------------//
// mirror / stitch / anchor
//----------------------------------------------------------------------------//

// TestSegment_Mirror checks reversal and angle negation.
func TestSegment_Mirror(t *testing.T) {
	in := segment{label: segNearIn, radii: []float64{6, 5, 4}, angles: []float64{0.1, 0.2, 0.3}}
	out := in.mirror(segNearOut)

	assert.Equal(t, segNearOut, out.label)
	assert.Equal(t, []float64{4, 5, 6}, out.radii)
	assert.Equal(t, []float64{-0.3, -0.2, -0.1}, out.angles)
	// the source is untouched
	assert.Equal(t, []float64{6, 5, 4}, in.radii)
}

// TestStitch checks order, length and the composed label.
func TestStitch(t *testing.T) {
	in := segment{label: segNearIn, radii: []float64{6, 5}, angles: []float64{1, 2}}
	s := stitch(in, point(segPeriastron, 4, 0), in.mirror(segNearOut))

	require.Equal(t, 5, s.len())
	assert.Equal(t, "near-inbound+periastron+near-outbound", s.label)
	assert.Equal(t, []float64{6, 5, 4, 5, 6}, s.radii)
	assert.Equal(t, []float64{1, 2, 0, -2, -1}, s.angles)
}

// TestAnchor checks the constant rotation onto theta0.
func TestAnchor(t *testing.T) {
	s := segment{radii: []float64{6, 7, 8}, angles: []float64{0.5, 0.7, 1.0}}
	p := anchor(s, 2)

	require.Len(t, p, 3)
	assert.Equal(t, 2.0, p[0].Theta)
	assert.InDelta(t, 2.2, p[1].Theta, 1e-15)
	assert.InDelta(t, 2.5, p[2].Theta, 1e-15)
	assert.Equal(t, []float64{6, 7, 8}, p.Radii())

	assert.Empty(t, anchor(segment{}, 1))
}

//----------------------------------------------------------------------------//
// scatterOrbit
//----------------------------------------------------------------------------//

// TestScatterOrbit_PeriastronIsZeroAngle checks Φ(r_p) = 0 and Φ grows
// outward.
func TestScatterOrbit_PeriastronIsZeroAngle(t *testing.T) {
	s := NewSolver()
	roots, err := s.cubicRoots(7)
	require.NoError(t, err)
	orb := newScatterOrbit(roots)

	assert.Equal(t, 0.0, orb.angle(orb.periastron()))
	prev := 0.0
	for _, r := range linspace(orb.periastron(), 50, 40, true)[1:] {
		cur := orb.angle(r)
		assert.Greater(t, cur, prev, "r=%g", r)
		prev = cur
	}
}

// TestSupercritical_ExcursionLabels checks segment order in both
// orientations of the asymmetric excursion.
func TestSupercritical_ExcursionLabels(t *testing.T) {
	s := NewSolver()
	roots, err := s.cubicRoots(7)
	require.NoError(t, err)
	orb := newScatterOrbit(roots)
	g := supercritical{tol: DefaultTolerance}

	seg, err := g.excursion(orb, 20, 10, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "far-inbound+near-inbound+periastron+near-outbound", seg.label)
	assert.Equal(t, 100, seg.len())
	assert.Equal(t, 20.0, seg.radii[0])

	seg, err = g.excursion(orb, 10, 20, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "near-inbound+periastron+near-outbound+far-outbound", seg.label)
	assert.Equal(t, 100, seg.len())
	assert.Equal(t, 10.0, seg.radii[0])
	assert.InDelta(t, 20.0, seg.radii[seg.len()-1], 1e-9)
}
