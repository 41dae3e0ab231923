package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"fingenius/src/schemas"
	"fingenius/src/utils"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	view, err := h.Controller.GetDashboard(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, view, http.StatusOK)
}

func (h *Handler) GetWealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	wealth, err := h.Controller.GetWealth(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, wealth, http.StatusOK)
}

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	holdings, err := h.Controller.GetHoldings(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) GetHoldingsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=holdings.csv")
	if err := h.Controller.WriteHoldingsCSV(ctx, w); err != nil {
		h.log(r).WithError(err).Error("failed to write holdings csv")
		h.HandleErrors(w, err)
	}
}

func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.HandleErrors(w, utils.BadRequest("limit must be a non-negative integer"))
			return
		}
	}

	activities, err := h.Controller.GetActivities(ctx, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, activities, http.StatusOK)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	insights, err := h.Controller.GetInsights(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, insights, http.StatusOK)
}

// RefreshDashboard accepts an optional JSON body with a reason.
func (h *Handler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	res := h.Controller.RequestRefresh(ctx, &req)
	h.log(r).WithField("refreshId", res.RefreshID).Info("dashboard refresh accepted")
	h.respond(w, r, res, http.StatusAccepted)
}
