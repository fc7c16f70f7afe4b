package penetration

import (
	"net/http"

	"Hammerforce/internal/calc/respond"
)

type Handler struct {
	Opts []Option
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input SIInput
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Calculate(input, h.Opts...)
	if err != nil {
		respond.CalcError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
