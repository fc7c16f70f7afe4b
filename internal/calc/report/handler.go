package report

import (
	"bytes"
	"net/http"

	"Hammerforce/internal/calc/batch"
	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/respond"
)

type Input struct {
	Meta
	Strike penetration.SIInput `json:"strike"`
}

type Handler struct {
	MaxItems int
	Opts     []penetration.Option
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := penetration.Calculate(input.Strike, h.Opts...)
	if err != nil {
		respond.CalcError(w, err)
		return
	}

	var buf bytes.Buffer
	id, err := PDF(&buf, input.Meta, input.Strike, res)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="penetration-`+id+`.pdf"`)
	w.Write(buf.Bytes())
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.Input
	if !respond.Decode(w, r, &input) {
		return
	}
	res, err := batch.Calculate(input, h.MaxItems, h.Opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := XLSX(&buf, FromBatch(res)); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="penetration.xlsx"`)
	w.Write(buf.Bytes())
}
