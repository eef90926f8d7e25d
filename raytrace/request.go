// SPDX-License-Identifier: MIT

package raytrace

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/photon/geodesic"
)

// Sentinel errors.
var (
	// ErrInvalidRequest indicates a request that fails field validation.
	ErrInvalidRequest = errors.New("raytrace: invalid request")

	// ErrEmptyBatch indicates a request file with no requests.
	ErrEmptyBatch = errors.New("raytrace: no requests")
)

// Request is one stored ray: a start point in the plane, the emission angle
// measured from the outward radial direction, and the solve arguments.
type Request struct {
	ID      uuid.UUID `json:"id" yaml:"id,omitempty"`
	X       float64   `json:"x" yaml:"x" validate:"finite"`
	Y       float64   `json:"y" yaml:"y" validate:"finite"`
	Delta0  float64   `json:"delta0" yaml:"delta0" validate:"finite"`
	Stop    float64   `json:"stop" yaml:"stop" validate:"required,finite"`
	Samples int       `json:"samples" yaml:"samples" validate:"gte=1"`
}

// Position is the stored orientation of the emitter. Delta (radians) is
// added to the emission angle of every request it applies to.
type Position struct {
	Delta float64 `json:"delta" yaml:"delta" validate:"finite"`
}

// Apply returns copies of reqs with p.Delta added to each Delta0.
func (p Position) Apply(reqs []Request) []Request {
	out := make([]Request, len(reqs))
	for i, r := range reqs {
		r.Delta0 += p.Delta
		out[i] = r
	}

	return out
}

// NewRequest builds a Request with a fresh random ID.
func NewRequest(x, y, delta0, stop float64, samples int) Request {
	return Request{ID: uuid.New(), X: x, Y: y, Delta0: delta0, Stop: stop, Samples: samples}
}

// FromRayState builds a Request starting at the polar point of ray.
func FromRayState(ray geodesic.RayState, stop float64, samples int) Request {
	s, c := math.Sincos(ray.Theta0)

	return NewRequest(ray.R0*c, ray.R0*s, ray.Delta0, stop, samples)
}

// Start returns the start point as a plane vector.
func (r Request) Start() r2.Vec { return r2.Vec{X: r.X, Y: r.Y} }

// RayState converts the Cartesian start to (r0, θ0). θ0 lies in (−π, π].
func (r Request) RayState() geodesic.RayState {
	p := r.Start()

	return geodesic.RayState{
		R0:     r2.Norm(p),
		Theta0: math.Atan2(p.Y, p.X),
		Delta0: r.Delta0,
	}
}

// Validate checks field constraints and that the start lies outside the
// horizon. Geometry the solver rejects (stop targets, periastron) is left
// to geodesic.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("request %s: %v: %w", r.ID, err, ErrInvalidRequest)
	}

	return nil
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("finite", validateFinite)
	validate.RegisterStructValidation(validateOutsideHorizon, Request{})
}

// validateFinite rejects NaN and ±Inf floats.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
		return false
	}
	v := f.Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateOutsideHorizon requires |(X, Y)| > 2.
func validateOutsideHorizon(sl validator.StructLevel) {
	r := sl.Current().Interface().(Request)
	if r2.Norm(r.Start()) <= geodesic.Horizon {
		sl.ReportError(r.X, "X", "X", "outside_horizon", "")
	}
}
