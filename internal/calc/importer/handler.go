package importer

import (
	"net/http"

	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/respond"
)

type Handler struct {
	MaxRows int
	Opts    []penetration.Option
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Process(file, h.MaxRows, h.Opts...)
	if err != nil {
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
