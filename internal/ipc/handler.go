package ipc

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"Hammerforce/internal/calc/numeric"
	"Hammerforce/internal/calc/respond"

	"github.com/gorilla/mux"
)

// Reply carries a channel result. A NaN result is encoded as null. Channel is set
// when the result belongs to a reply channel rather than the one invoked.
type Reply struct {
	Channel string `json:"channel,omitempty"`
	Result  any    `json:"result"`
}

type Handler struct {
	Dispatcher *Dispatcher
}

func (h *Handler) Invoke(w http.ResponseWriter, r *http.Request) {
	channel := mux.Vars(r)["channel"]
	if !h.Dispatcher.HasHandler(channel) {
		http.Error(w, "Unknown channel", http.StatusNotFound)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(payload) {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := h.Dispatcher.Dispatch(r.Context(), Event{Channel: channel, Payload: payload})
	if err != nil {
		var verr *numeric.ValidationError
		if errors.As(err, &verr) {
			respond.JSON(w, http.StatusUnprocessableEntity, verr)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if f, ok := res.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		res = nil
	}
	respond.JSON(w, http.StatusOK, Reply{Channel: h.Dispatcher.ReplyChannel(channel), Result: res})
}
