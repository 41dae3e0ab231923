package controllers

import (
	"context"
	"io"
	"strings"

	"fingenius/src/schemas"
	"fingenius/src/utils"
)

func (c *Controller) GetDashboard(ctx context.Context) (*schemas.DashboardView, error) {
	return c.Dashboard.Snapshot(ctx)
}

func (c *Controller) GetWealth(ctx context.Context) (*schemas.WealthView, error) {
	view, err := c.Dashboard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &view.Wealth, nil
}

func (c *Controller) GetHoldings(ctx context.Context) ([]schemas.HoldingView, error) {
	view, err := c.Dashboard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return view.Portfolio.Holdings, nil
}

func (c *Controller) GetActivities(ctx context.Context, limit int) ([]schemas.ActivityView, error) {
	return c.Dashboard.Activities(ctx, limit)
}

func (c *Controller) GetInsights(ctx context.Context) (*schemas.InsightsView, error) {
	view, err := c.Dashboard.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &view.Insights, nil
}

// WriteHoldingsCSV writes the raw, unformatted holdings.
func (c *Controller) WriteHoldingsCSV(ctx context.Context, w io.Writer) error {
	holdings, err := c.Dashboard.Holdings(ctx)
	if err != nil {
		return err
	}
	return utils.WriteHoldingsCSV(w, holdings)
}

func (c *Controller) RequestRefresh(ctx context.Context, req *schemas.RefreshRequest) *schemas.RefreshResponse {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = "manual"
	}
	return &schemas.RefreshResponse{
		RefreshID: c.Dashboard.RequestRefresh(reason),
		Pending:   true,
	}
}
