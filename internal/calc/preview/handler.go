package preview

import (
	"math"
	"net/http"

	"Hammerforce/internal/calc/respond"
)

// Response is Result with non-finite numbers encoded as null.
type Response struct {
	TotalArmLength        *float64 `json:"totalArmLength"`
	Velocity              *float64 `json:"velocity"`
	TotalMass             *float64 `json:"totalMass"`
	KineticEnergy         *float64 `json:"kineticEnergy"`
	PenetrationPercentage *float64 `json:"penetrationPercentage"`
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func toResponse(res *Result) *Response {
	if res == nil {
		return nil
	}
	return &Response{
		TotalArmLength:        finite(res.TotalArmLength),
		Velocity:              finite(res.Velocity),
		TotalMass:             finite(res.TotalMass),
		KineticEnergy:         finite(res.KineticEnergy),
		PenetrationPercentage: finite(res.PenetrationPercentage),
	}
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Values
	if !respond.Decode(w, r, &input) {
		return
	}
	respond.JSON(w, http.StatusOK, toResponse(Compute(&input)))
}
