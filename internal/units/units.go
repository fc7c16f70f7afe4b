// Package units converts the display units a form is filled in (cm, mm, MPa) into the
// SI values the calculator consumes.
package units

import (
	"math"

	"Hammerforce/internal/calc/penetration"
)

// FormInput is a strike as entered on the form. Lengths are in cm except the nail
// diameter (mm); hardness is in MPa; masses in kg, time in s, angle in degrees.
type FormInput struct {
	ArmLength                float64 `json:"armLength" yaml:"armLength" validate:"gt=0,lte=200"`
	HandleToHammerHeadLength float64 `json:"handleToHammerHeadLength" yaml:"handleToHammerHeadLength" validate:"gt=0,lte=50"`
	HammerHeadHeight         float64 `json:"hammerHeadHeight" yaml:"hammerHeadHeight" validate:"gte=2,lte=30"`
	TravelTime               float64 `json:"travelTime" yaml:"travelTime" validate:"gt=0,lte=5"`
	HammerWeight             float64 `json:"hammerWeight" yaml:"hammerWeight" validate:"gt=0,lte=100"`
	ArmWeight                float64 `json:"armWeight" yaml:"armWeight" validate:"gt=0,lte=200"`
	Diameter                 float64 `json:"diameter" yaml:"diameter" validate:"gt=0,lte=50"`
	NailLength               float64 `json:"nailLength" yaml:"nailLength" validate:"gt=0,lte=100"`
	ConeLength               float64 `json:"coneLength" yaml:"coneLength" validate:"gt=0,lte=100"`
	ConeAngleDeg             float64 `json:"coneAngleDeg" yaml:"coneAngleDeg" validate:"gte=0,lte=180"`
	MaterialHardness         float64 `json:"materialHardness" yaml:"materialHardness" validate:"gt=0,lte=100000"`
	MaterialHeight           float64 `json:"materialHeight" yaml:"materialHeight" validate:"gt=0,lte=1000"`
	NailFrictionCoefficient  float64 `json:"nailFrictionCoefficient" yaml:"nailFrictionCoefficient" validate:"gte=0,lte=1"`
}

// roundTo3 rounds to the nearest thousandth. The calculator itself truncates;
// the form conversion has always rounded, and results depend on both.
func roundTo3(n float64) float64 {
	return math.Round(n*1000) / 1000
}

func CmToM(v float64) float64 {
	return roundTo3(v / 100)
}

func MmToM(v float64) float64 {
	return roundTo3(v / 1000)
}

func MPaToPa(v float64) float64 {
	return roundTo3(v * 1_000_000)
}

// NormalizeToSI converts every length and the hardness. Time, masses, angle and the
// coefficient pass through unchanged.
func NormalizeToSI(ui FormInput) penetration.SIInput {
	return penetration.SIInput{
		ArmLength:                CmToM(ui.ArmLength),
		HandleToHammerHeadLength: CmToM(ui.HandleToHammerHeadLength),
		HammerHeadHeight:         CmToM(ui.HammerHeadHeight),
		TravelTime:               ui.TravelTime,
		HammerWeight:             ui.HammerWeight,
		ArmWeight:                ui.ArmWeight,
		Diameter:                 MmToM(ui.Diameter),
		NailLength:               CmToM(ui.NailLength),
		ConeLength:               CmToM(ui.ConeLength),
		ConeAngleDeg:             ui.ConeAngleDeg,
		MaterialHardness:         MPaToPa(ui.MaterialHardness),
		MaterialHeight:           CmToM(ui.MaterialHeight),
		NailFrictionCoefficient:  ui.NailFrictionCoefficient,
	}
}
