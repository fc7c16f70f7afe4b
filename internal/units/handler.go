package units

import (
	"errors"
	"net/http"

	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/respond"
)

// Compute checks the form limits, converts to SI and runs the pipeline.
func Compute(ui FormInput, opts ...penetration.Option) (penetration.Result, error) {
	if err := ValidateForm(ui); err != nil {
		return penetration.Result{}, err
	}
	return penetration.Calculate(NormalizeToSI(ui), opts...)
}

type Handler struct {
	Opts []penetration.Option
}

// Form accepts a display-unit body and answers with the SI breakdown.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	var input FormInput
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := Compute(input, h.Opts...)
	if err != nil {
		var ferrs FormErrors
		if errors.As(err, &ferrs) {
			respond.JSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": ferrs})
			return
		}
		respond.CalcError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
