// SPDX-License-Identifier: MIT

package geodesic

import (
	"gonum.org/v1/gonum/floats"
)

// segment is one labeled piece of a path: parallel radius and raw angle
// samples, in travel order. Stitched paths around a periastron are built by
// concatenating segments in a fixed order instead of slicing arrays ad hoc.
type segment struct {
	label  string
	radii  []float64
	angles []float64
}

// Segment labels used by the supercritical stitcher.
const (
	segSweep      = "sweep"
	segFarIn      = "far-inbound"
	segFarOut     = "far-outbound"
	segNearIn     = "near-inbound"
	segNearOut    = "near-outbound"
	segPeriastron = "periastron"
)

// len returns the number of samples in s.
func (s segment) len() int { return len(s.radii) }

// mirror returns s traversed backwards with every angle negated: the
// outbound image of an inbound segment under reflection about periastron.
func (s segment) mirror(label string) segment {
	n := s.len()
	out := segment{
		label:  label,
		radii:  make([]float64, n),
		angles: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.radii[i] = s.radii[n-1-i]
		out.angles[i] = -s.angles[n-1-i]
	}

	return out
}

// point returns a single-sample segment.
func point(label string, r, angle float64) segment {
	return segment{label: label, radii: []float64{r}, angles: []float64{angle}}
}

// stitch concatenates segs in order into one segment.
func stitch(segs ...segment) segment {
	total := 0
	for _, s := range segs {
		total += s.len()
	}
	out := segment{
		radii:  make([]float64, 0, total),
		angles: make([]float64, 0, total),
	}
	for i, s := range segs {
		if i > 0 {
			out.label += "+"
		}
		out.label += s.label
		out.radii = append(out.radii, s.radii...)
		out.angles = append(out.angles, s.angles...)
	}

	return out
}

// anchor rotates the angles so the first equals theta0 and returns the
// samples as a Path. The first sample is pinned to theta0 exactly.
func anchor(s segment, theta0 float64) Path {
	n := s.len()
	if n == 0 {
		return Path{}
	}
	offset := s.angles[0] - theta0
	out := make(Path, n)
	for i := 0; i < n; i++ {
		out[i] = Point{R: s.radii[i], Theta: s.angles[i] - offset}
	}
	out[0].Theta = theta0

	return out
}

// linspace returns n evenly spaced samples from start to stop. With
// endpoint=false stop is excluded and the step is (stop−start)/n.
func linspace(start, stop float64, n int, endpoint bool) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case !endpoint:
		return linspace(start, stop, n+1, true)[:n]
	case n == 1:
		return []float64{start}
	default:
		return floats.Span(make([]float64, n), start, stop)
	}
}

// mapSlice applies fn to every element of xs.
func mapSlice(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}

	return out
}
