// Package penetration composes the stage formulas into the strike-to-percentage pipeline.
package penetration

import (
	"Hammerforce/internal/calc/friction"
	"Hammerforce/internal/calc/geometry"
	"Hammerforce/internal/calc/kinematics"
)

// SIInput is one strike described in SI units: m, kg, s, Pa, degrees.
type SIInput struct {
	ArmLength                float64 `json:"armLength" yaml:"armLength"`
	HandleToHammerHeadLength float64 `json:"handleToHammerHeadLength" yaml:"handleToHammerHeadLength"`
	HammerHeadHeight         float64 `json:"hammerHeadHeight" yaml:"hammerHeadHeight"`
	TravelTime               float64 `json:"travelTime" yaml:"travelTime"`
	HammerWeight             float64 `json:"hammerWeight" yaml:"hammerWeight"`
	ArmWeight                float64 `json:"armWeight" yaml:"armWeight"`
	Diameter                 float64 `json:"diameter" yaml:"diameter"`
	NailLength               float64 `json:"nailLength" yaml:"nailLength"`
	ConeLength               float64 `json:"coneLength" yaml:"coneLength"`
	ConeAngleDeg             float64 `json:"coneAngleDeg" yaml:"coneAngleDeg"`
	MaterialHardness         float64 `json:"materialHardness" yaml:"materialHardness"`
	MaterialHeight           float64 `json:"materialHeight" yaml:"materialHeight"`
	NailFrictionCoefficient  float64 `json:"nailFrictionCoefficient" yaml:"nailFrictionCoefficient"`
}

// Result holds every published stage value. The two areas are unrounded intermediates.
type Result struct {
	TotalArmLength        float64 `json:"totalArmLength"`
	Velocity              float64 `json:"velocity"`
	TotalMass             float64 `json:"totalMass"`
	KineticEnergy         float64 `json:"kineticEnergy"`
	ShaftArea             float64 `json:"shaftArea"`
	ConeAreaAvg           float64 `json:"coneAreaAvg"`
	FrictionForce         float64 `json:"frictionForce"`
	MaxPenetrationDepth   float64 `json:"maxPenetrationDepth"`
	PenetrationPercentage float64 `json:"penetrationPercentage"`
}

type settings struct {
	clampTip bool
}

// Option adjusts the pipeline.
type Option func(*settings)

// WithClampedTip selects the cone formula that clamps a negative tip radius to zero.
func WithClampedTip(enabled bool) Option {
	return func(s *settings) {
		s.clampTip = enabled
	}
}

// ComputePercentage runs the whole pipeline and returns the share of MaterialHeight
// the nail is driven, in percent. The first failing stage's error is returned as is.
func ComputePercentage(in SIInput, opts ...Option) (float64, error) {
	res, err := Calculate(in, opts...)
	if err != nil {
		return 0, err
	}
	return res.PenetrationPercentage, nil
}

// Calculate runs the stages in order: arm length, velocity, mass, kinetic energy,
// friction force, depth, percentage. Nothing after a failing stage runs.
func Calculate(in SIInput, opts ...Option) (Result, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	geo := geometry.ClampedTip(s.clampTip)

	arm, err := kinematics.TotalArmLength(in.ArmLength, in.HandleToHammerHeadLength, in.HammerHeadHeight)
	if err != nil {
		return Result{}, err
	}
	v, err := kinematics.Velocity(arm, in.TravelTime)
	if err != nil {
		return Result{}, err
	}
	m, err := kinematics.TotalMass(in.HammerWeight, in.ArmWeight)
	if err != nil {
		return Result{}, err
	}
	ke, err := kinematics.KineticEnergy(m, v)
	if err != nil {
		return Result{}, err
	}

	force, err := friction.FrictionForce(
		in.Diameter,
		in.MaterialHardness,
		in.NailLength,
		in.ConeLength,
		in.ConeAngleDeg,
		friction.WithCoefficient(in.NailFrictionCoefficient),
		friction.WithGeometry(geo),
	)
	if err != nil {
		return Result{}, err
	}
	depth, err := friction.MaxPenetrationDepth(ke, force)
	if err != nil {
		return Result{}, err
	}
	pct, err := friction.PenetrationPercentage(depth, in.MaterialHeight)
	if err != nil {
		return Result{}, err
	}

	// both already validated by the force stage
	shaftArea, _ := geometry.ShaftCrossSection(in.Diameter)
	coneArea, _ := geometry.ConeCrossSectionAvg(in.Diameter, in.ConeLength, in.ConeAngleDeg, geo)

	return Result{
		TotalArmLength:        arm,
		Velocity:              v,
		TotalMass:             m,
		KineticEnergy:         ke,
		ShaftArea:             shaftArea,
		ConeAreaAvg:           coneArea,
		FrictionForce:         force,
		MaxPenetrationDepth:   depth,
		PenetrationPercentage: pct,
	}, nil
}
