package batch

import (
	"net/http"

	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/respond"
)

type Handler struct {
	MaxItems int
	Opts     []penetration.Option
}

func (h *Handler) Penetration(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Calculate(input, h.MaxItems, h.Opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
