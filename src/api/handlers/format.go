package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	res, err := h.Controller.Format(chi.URLParam(r, "kind"), r.URL.Query())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, res, http.StatusOK)
}
