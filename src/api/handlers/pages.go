package handlers

import (
	"bytes"
	"net/http"

	"fingenius/src/utils/render"
)

func (h *Handler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.requestContext(r)
		defer cancel()

		var buf bytes.Buffer
		if err := h.Controller.RenderPage(ctx, &buf, name); err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.page(render.PageHome)(w, r)
}

func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.page(render.PageAbout)(w, r)
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	h.page(render.PageDashboard)(w, r)
}

func (h *Handler) AllocationChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var buf bytes.Buffer
	if err := h.Controller.RenderAllocationChart(ctx, &buf); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) ExportDashboardPDF(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	pdf, err := h.Controller.ExportDashboardPDF(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=dashboard.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
