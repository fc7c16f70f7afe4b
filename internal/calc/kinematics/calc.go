package kinematics

import "Hammerforce/internal/calc/numeric"

type Input struct {
	ArmLength                float64 `json:"armLength"`
	HandleToHammerHeadLength float64 `json:"handleToHammerHeadLength"`
	HammerHeadHeight         float64 `json:"hammerHeadHeight"`
	TravelTime               float64 `json:"travelTime"`
	HammerWeight             float64 `json:"hammerWeight"`
	ArmWeight                float64 `json:"armWeight"`
}

type Result struct {
	TotalArmLength float64 `json:"totalArmLength"`
	Velocity       float64 `json:"velocity"`
	TotalMass      float64 `json:"totalMass"`
	KineticEnergy  float64 `json:"kineticEnergy"`
}

// TotalArmLength is the swing radius in m: arm, handle and half the head height.
func TotalArmLength(armLength, handleToHammerHeadLength, hammerHeadHeight float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("armLength", armLength),
		numeric.F("handleToHammerHeadLength", handleToHammerHeadLength),
		numeric.F("hammerHeadHeight", hammerHeadHeight),
	); err != nil {
		return 0, err
	}
	return numeric.Round3(armLength + handleToHammerHeadLength + hammerHeadHeight/2), nil
}

// Velocity in m/s.
func Velocity(distance, time float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("distance", distance),
		numeric.F("time", time),
	); err != nil {
		return 0, err
	}
	return numeric.Round3(distance / time), nil
}

// TotalMass in kg.
func TotalMass(hammerWeight, armWeight float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("hammerWeight", hammerWeight),
		numeric.F("armWeight", armWeight),
	); err != nil {
		return 0, err
	}
	return numeric.Round3(hammerWeight + armWeight), nil
}

// KineticEnergy in J.
func KineticEnergy(totalMass, velocity float64) (float64, error) {
	if err := numeric.Positive(
		numeric.F("totalMass", totalMass),
		numeric.F("velocity", velocity),
	); err != nil {
		return 0, err
	}
	return numeric.Round3(0.5 * totalMass * (velocity * velocity)), nil
}

func Calculate(in Input) (Result, error) {
	arm, err := TotalArmLength(in.ArmLength, in.HandleToHammerHeadLength, in.HammerHeadHeight)
	if err != nil {
		return Result{}, err
	}
	v, err := Velocity(arm, in.TravelTime)
	if err != nil {
		return Result{}, err
	}
	m, err := TotalMass(in.HammerWeight, in.ArmWeight)
	if err != nil {
		return Result{}, err
	}
	ke, err := KineticEnergy(m, v)
	if err != nil {
		return Result{}, err
	}
	return Result{
		TotalArmLength: arm,
		Velocity:       v,
		TotalMass:      m,
		KineticEnergy:  ke,
	}, nil
}
