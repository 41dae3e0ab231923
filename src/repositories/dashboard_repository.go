package repositories

import (
	"context"

	"fingenius/src/models"
)

// DashboardRepository reads everything the dashboard renders.
type DashboardRepository interface {
	GetWealthMetrics(ctx context.Context) (*models.WealthMetrics, error)
	// ListHoldings returns holdings by allocation, largest first.
	ListHoldings(ctx context.Context) ([]models.Holding, error)
	// ListActivities returns the newest activities first. limit <= 0 means all.
	ListActivities(ctx context.Context, limit int) ([]models.Activity, error)
	ListInsights(ctx context.Context) ([]models.Insight, error)
	GetSummary(ctx context.Context) (*models.Summary, error)
}
