package kinematics

import (
	"net/http"

	"Hammerforce/internal/calc/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Calculate(input)
	if err != nil {
		respond.CalcError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
