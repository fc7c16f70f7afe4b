package geometry

import (
	"math"

	"Hammerforce/internal/calc/numeric"
)

// Option adjusts the cone formula.
type Option func(*options)

type options struct {
	clampTip bool
}

// WithClampedTip clamps a negative cone tip radius to zero before averaging.
// Without it a cone longer than its taper allows keeps the negative radius.
func WithClampedTip() Option {
	return func(o *options) {
		o.clampTip = true
	}
}

// ClampedTip returns WithClampedTip when enabled is true and a no-op otherwise.
func ClampedTip(enabled bool) Option {
	if !enabled {
		return func(*options) {}
	}
	return WithClampedTip()
}

func circleArea(radius float64) float64 {
	return math.Pi * (radius * radius)
}

// ShaftCrossSection returns the area of a round shaft in m². Not rounded.
func ShaftCrossSection(diameter float64) (float64, error) {
	if err := numeric.Positive(numeric.F("diameter", diameter)); err != nil {
		return 0, err
	}
	return circleArea(diameter / 2), nil
}

// ConeCrossSectionAvg returns the area of the circle whose radius is the mean of the
// cone base and tip radii, in m². A 0° apex angle gives exactly the shaft area.
func ConeCrossSectionAvg(diameter, coneLength, coneAngleDeg float64, opts ...Option) (float64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := numeric.NonNegative(numeric.F("coneAngleDeg", coneAngleDeg)); err != nil {
		return 0, err
	}
	if err := numeric.Positive(
		numeric.F("diameter", diameter),
		numeric.F("coneLength", coneLength),
	); err != nil {
		return 0, err
	}

	baseRadius := diameter / 2
	halfAngleRad := (coneAngleDeg / 2) * math.Pi / 180
	// explicit conversion keeps the product from being fused into the subtraction
	taper := float64(coneLength * math.Tan(halfAngleRad))
	tipRadius := baseRadius - taper
	if o.clampTip && tipRadius < 0 {
		tipRadius = 0
	}
	avgRadius := (baseRadius + tipRadius) / 2

	return circleArea(avgRadius), nil
}
