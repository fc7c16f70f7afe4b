// Package preview gives a live, unrounded estimate while the form is still being filled.
// It never validates; missing or unusable values just leave gaps in the output.
package preview

import (
	"math"
)

// Values are display-unit form fields. A nil field has not been entered yet.
type Values struct {
	ArmLength                *float64 `json:"armLength"`
	HandleToHammerHeadLength *float64 `json:"handleToHammerHeadLength"`
	HammerHeadHeight         *float64 `json:"hammerHeadHeight"`
	TravelTime               *float64 `json:"travelTime"`
	HammerWeight             *float64 `json:"hammerWeight"`
	ArmWeight                *float64 `json:"armWeight"`
	Diameter                 *float64 `json:"diameter"`
	NailLength               *float64 `json:"nailLength"`
	ConeLength               *float64 `json:"coneLength"`
	ConeAngleDeg             *float64 `json:"coneAngleDeg"`
	MaterialHardness         *float64 `json:"materialHardness"`
	MaterialHeight           *float64 `json:"materialHeight"`
	NailFrictionCoefficient  *float64 `json:"nailFrictionCoefficient"`
}

// Result is in SI units. PenetrationPercentage is NaN until the nail and material
// fields are complete and the friction force is positive.
type Result struct {
	TotalArmLength        float64
	Velocity              float64
	TotalMass             float64
	KineticEnergy         float64
	PenetrationPercentage float64
}

// value is NaN for a field that has not been entered.
func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func allFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Compute returns nil while any arm or hammer field is missing.
func Compute(v *Values) *Result {
	if v == nil {
		return nil
	}

	arm := value(v.ArmLength) / 100
	handle := value(v.HandleToHammerHeadLength) / 100
	headH := value(v.HammerHeadHeight) / 100
	t := value(v.TravelTime)
	mHammer := value(v.HammerWeight)
	mArm := value(v.ArmWeight)
	if !allFinite(arm, handle, headH, t, mHammer, mArm) {
		return nil
	}

	res := &Result{PenetrationPercentage: math.NaN()}
	res.TotalArmLength = arm + handle + headH/2
	res.Velocity = res.TotalArmLength / t
	res.TotalMass = mHammer + mArm
	res.KineticEnergy = 0.5 * res.TotalMass * res.Velocity * res.Velocity

	d := value(v.Diameter) / 1000
	nailLen := value(v.NailLength) / 100
	coneLen := value(v.ConeLength) / 100
	angle := value(v.ConeAngleDeg)
	hardness := value(v.MaterialHardness) * 1_000_000
	materialH := value(v.MaterialHeight) / 100
	mu := value(v.NailFrictionCoefficient)
	if !allFinite(d, nailLen, coneLen, angle, hardness, materialH, mu) {
		return res
	}

	baseRadius := d / 2
	tipRadius := baseRadius - coneLen*math.Tan(angle/2*math.Pi/180)
	avgRadius := (baseRadius + tipRadius) / 2
	shaftArea := math.Pi * baseRadius * baseRadius
	coneArea := math.Pi * avgRadius * avgRadius

	shaftLength := math.Max(0, nailLen-coneLen)
	force := (shaftArea*hardness*shaftLength + coneArea*hardness*coneLen) * mu
	if force <= 0 || materialH <= 0 {
		return res
	}
	res.PenetrationPercentage = res.KineticEnergy / force / materialH * 100
	return res
}
