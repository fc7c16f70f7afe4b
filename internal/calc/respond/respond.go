// Package respond writes JSON bodies for the calculator handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"Hammerforce/internal/calc/numeric"
)

// JSON encodes v before touching the response, so an unencodable value becomes a
// 500 instead of a bare status line.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Response encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// CalcError maps a calculation failure to a status code. Validation failures carry
// the offending field and value so a form can highlight it.
func CalcError(w http.ResponseWriter, err error) {
	var verr *numeric.ValidationError
	if errors.As(err, &verr) {
		JSON(w, http.StatusUnprocessableEntity, verr)
		return
	}
	http.Error(w, "Calculation error", http.StatusBadRequest)
}

// Decode reads a JSON body into v and writes 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}
