package friction

import (
	"Hammerforce/internal/calc/geometry"
	"Hammerforce/internal/calc/numeric"
)

// DefaultCoefficient is the steel-on-wood friction coefficient used when none is given.
const DefaultCoefficient = 0.4

// Option adjusts FrictionForce.
type Option func(*options)

type options struct {
	coefficient float64
	geometry    []geometry.Option
}

// WithCoefficient replaces DefaultCoefficient. Zero is rejected like any other
// non-positive operand, it does not mean "no friction".
func WithCoefficient(mu float64) Option {
	return func(o *options) {
		o.coefficient = mu
	}
}

// WithGeometry forwards options to the cone cross-section formula.
func WithGeometry(opts ...geometry.Option) Option {
	return func(o *options) {
		o.geometry = append(o.geometry, opts...)
	}
}

type Input struct {
	Diameter            float64  `json:"diameter"`
	MaterialHardness    float64  `json:"materialHardness"`
	NailLength          float64  `json:"nailLength"`
	ConeLength          float64  `json:"coneLength"`
	ConeAngleDeg        float64  `json:"coneAngleDeg"`
	FrictionCoefficient *float64 `json:"nailFrictionCoefficient,omitempty"`
	KineticEnergy       float64  `json:"kineticEnergy"`
	MaterialHeight      float64  `json:"materialHeight"`
}

type Result struct {
	FrictionForce         float64 `json:"frictionForce"`
	MaxPenetrationDepth   float64 `json:"maxPenetrationDepth"`
	PenetrationPercentage float64 `json:"penetrationPercentage"`
}

// FrictionForce in N: the normal force on the shaft and on the cone, each the
// cross-section times hardness times length, scaled by the friction coefficient.
func FrictionForce(diameter, materialHardness, nailLength, coneLength, coneAngleDeg float64, opts ...Option) (float64, error) {
	o := options{coefficient: DefaultCoefficient}
	for _, opt := range opts {
		opt(&o)
	}

	if err := numeric.NonNegative(numeric.F("coneAngleDeg", coneAngleDeg)); err != nil {
		return 0, err
	}
	if err := numeric.Positive(
		numeric.F("diameter", diameter),
		numeric.F("materialHardness", materialHardness),
		numeric.F("nailLength", nailLength),
		numeric.F("coneLength", coneLength),
		numeric.F("frictionCoefficient", o.coefficient),
	); err != nil {
		return 0, err
	}

	// may go negative when the cone is longer than the nail
	shaftLength := nailLength - coneLength

	shaftArea, err := geometry.ShaftCrossSection(diameter)
	if err != nil {
		return 0, err
	}
	coneArea, err := geometry.ConeCrossSectionAvg(diameter, coneLength, coneAngleDeg, o.geometry...)
	if err != nil {
		return 0, err
	}

	// explicit conversions keep each product from being fused into the sum
	shaftForce := float64(shaftArea * materialHardness * shaftLength)
	coneForce := float64(coneArea * materialHardness * coneLength)
	normalForce := shaftForce + coneForce

	return numeric.Round3(normalForce * o.coefficient), nil
}

// MaxPenetrationDepth in m: the distance over which friction absorbs the strike energy.
func MaxPenetrationDepth(kineticEnergy, frictionForce float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("kineticEnergy", kineticEnergy),
		numeric.F("frictionForce", frictionForce),
	); err != nil {
		return 0, err
	}
	depth := kineticEnergy / frictionForce
	if err := numeric.Finite(numeric.F("maxPenetrationDepth", depth)); err != nil {
		return 0, err
	}
	return numeric.Round3(depth), nil
}

// PenetrationPercentage of referenceLength reached by the nail. Not capped at 100.
func PenetrationPercentage(maxPenetrationDepth, referenceLength float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("maxPenetrationDepth", maxPenetrationDepth),
		numeric.F("referenceLength", referenceLength),
	); err != nil {
		return 0, err
	}
	return numeric.Round3((maxPenetrationDepth / referenceLength) * 100), nil
}

// Calculate runs force, depth and percentage for a known kinetic energy.
func Calculate(in Input, opts ...Option) (Result, error) {
	if in.FrictionCoefficient != nil {
		opts = append(opts[:len(opts):len(opts)], WithCoefficient(*in.FrictionCoefficient))
	}
	force, err := FrictionForce(in.Diameter, in.MaterialHardness, in.NailLength, in.ConeLength, in.ConeAngleDeg, opts...)
	if err != nil {
		return Result{}, err
	}
	depth, err := MaxPenetrationDepth(in.KineticEnergy, force)
	if err != nil {
		return Result{}, err
	}
	pct, err := PenetrationPercentage(depth, in.MaterialHeight)
	if err != nil {
		return Result{}, err
	}
	return Result{
		FrictionForce:         force,
		MaxPenetrationDepth:   depth,
		PenetrationPercentage: pct,
	}, nil
}
