package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"fingenius/src/schemas"
	"fingenius/src/utils"
)

// Subscribe takes a JSON body or the form posted by the home page.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.SubscribeRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.HandleErrors(w, utils.BadRequest("invalid request body"))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.HandleErrors(w, utils.BadRequest("invalid form"))
			return
		}
		req.Email = r.PostForm.Get("email")
	}

	res, err := h.Controller.Subscribe(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, res, http.StatusOK)
}
