package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fingenius/src/utils"
	"fingenius/src/utils/render"
)

func (c *Controller) RenderPage(ctx context.Context, w io.Writer, page string) error {
	html, err := c.pageHTML(ctx, page)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

func (c *Controller) pageHTML(ctx context.Context, page string) (string, error) {
	r := c.Renderer
	switch page {
	case render.PageHome:
		return r.RenderHTML(page, r.NewPage("Home", "FinGenius - AI-Powered Financial Advisory",
			"Intelligent wealth management and investment optimization powered by AI", render.DefaultHome))
	case render.PageAbout:
		return r.RenderHTML(page, r.NewPage("About", "About FinGenius",
			"Who we are and what we believe", render.DefaultAbout))
	case render.PageDashboard:
		view, err := c.Dashboard.Snapshot(ctx)
		if err != nil {
			return "", err
		}
		summary, err := c.Dashboard.Summary(ctx)
		if err != nil {
			return "", err
		}
		content := render.DashboardContent{View: *view, SummaryHTML: summary}
		return r.RenderHTML(page, r.NewPage("Dashboard", "Dashboard - FinGenius",
			"Your portfolio at a glance", content))
	}
	return "", utils.NotFound(fmt.Sprintf("page %s not found", page))
}

func (c *Controller) RenderAllocationChart(ctx context.Context, w io.Writer) error {
	sectors, err := c.Dashboard.SectorAllocation(ctx)
	if err != nil {
		return err
	}
	pie := make([]render.Slice, 0, len(sectors))
	for _, s := range sectors {
		pie = append(pie, render.Slice{Name: s.Sector, Value: s.Value})
	}
	return render.RenderPieGraph(w, "Sector Allocation", pie)
}

func (c *Controller) ExportDashboardPDF(ctx context.Context) ([]byte, error) {
	html, err := c.pageHTML(ctx, render.PageDashboard)
	if err != nil {
		return nil, err
	}
	pdf, err := c.Renderer.GeneratePDF([]string{html})
	if errors.Is(err, render.ErrPDFUnavailable) {
		return nil, utils.ServiceUnavailable(err.Error())
	}
	if err != nil {
		return nil, err
	}
	return pdf.Bytes(), nil
}
