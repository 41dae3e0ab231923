package repositories

import (
	"context"
	"slices"
	"sort"

	"fingenius/src/data"
	"fingenius/src/models"
)

type mockDashboardRepo struct{}

// NewMockDashboardRepository serves the compiled-in dataset. Callers get
// copies and can not alter it.
func NewMockDashboardRepository() DashboardRepository {
	return &mockDashboardRepo{}
}

func (r *mockDashboardRepo) GetWealthMetrics(ctx context.Context) (*models.WealthMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := data.Wealth
	return &w, nil
}

func (r *mockDashboardRepo) ListHoldings(ctx context.Context) ([]models.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	holdings := slices.Clone(data.Holdings)
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].Allocation > holdings[j].Allocation
	})
	return holdings, nil
}

func (r *mockDashboardRepo) ListActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	activities := slices.Clone(data.Activities)
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if limit > 0 && limit < len(activities) {
		activities = activities[:limit]
	}
	return activities, nil
}

func (r *mockDashboardRepo) ListInsights(ctx context.Context) ([]models.Insight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(data.Insights), nil
}

func (r *mockDashboardRepo) GetSummary(ctx context.Context) (*models.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := data.Summary
	return &s, nil
}
