package controllers

import (
	"context"
	"io"
	"net/url"

	"fingenius/src/schemas"
	"fingenius/src/services"
	"fingenius/src/utils/render"
)

type IController interface {
	GetDashboard(ctx context.Context) (*schemas.DashboardView, error)
	GetWealth(ctx context.Context) (*schemas.WealthView, error)
	GetHoldings(ctx context.Context) ([]schemas.HoldingView, error)
	GetActivities(ctx context.Context, limit int) ([]schemas.ActivityView, error)
	GetInsights(ctx context.Context) (*schemas.InsightsView, error)
	WriteHoldingsCSV(ctx context.Context, w io.Writer) error
	RequestRefresh(ctx context.Context, req *schemas.RefreshRequest) *schemas.RefreshResponse

	RenderPage(ctx context.Context, w io.Writer, page string) error
	RenderAllocationChart(ctx context.Context, w io.Writer) error
	ExportDashboardPDF(ctx context.Context) ([]byte, error)

	Subscribe(ctx context.Context, req *schemas.SubscribeRequest) (*schemas.SubscribeResponse, error)
	Format(kind string, query url.Values) (*schemas.FormatResponse, error)
}

type Controller struct {
	Dashboard   services.DashboardServiceI
	Renderer    *render.Renderer
	Subscribers *SubscriberList
}

func NewController(dashboard services.DashboardServiceI, renderer *render.Renderer) *Controller {
	return &Controller{
		Dashboard:   dashboard,
		Renderer:    renderer,
		Subscribers: NewSubscriberList(),
	}
}
