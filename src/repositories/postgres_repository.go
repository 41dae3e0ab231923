package repositories

import (
	"context"
	"errors"
	"fmt"

	"fingenius/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoWealthMetrics = errors.New("no wealth metrics recorded")

type postgresDashboardRepo struct {
	db *pgxpool.Pool
}

func NewPostgresDashboardRepository(db *pgxpool.Pool) DashboardRepository {
	return &postgresDashboardRepo{db: db}
}

func (r *postgresDashboardRepo) GetWealthMetrics(ctx context.Context) (*models.WealthMetrics, error) {
	var w models.WealthMetrics
	err := r.db.QueryRow(ctx,
		`SELECT total_value, total_change, total_change_percent, cash_balance, invested_amount,
			daily_return, monthly_return, yearly_return, benchmark_return, weekly_activity_total
		FROM wealth_metrics
		ORDER BY as_of DESC
		LIMIT 1`).Scan(
		&w.TotalValue, &w.TotalChange, &w.TotalChangePercent, &w.CashBalance, &w.InvestedAmount,
		&w.DailyReturn, &w.MonthlyReturn, &w.YearlyReturn, &w.BenchmarkReturn, &w.WeeklyActivityTotal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoWealthMetrics
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresDashboardRepo) ListHoldings(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, symbol, name, quantity, current_price, current_value, change_percent, allocation, sector
		FROM holdings
		ORDER BY allocation DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.Symbol, &h.Name, &h.Quantity, &h.CurrentPrice, &h.CurrentValue,
			&h.ChangePercent, &h.Allocation, &h.Sector); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *postgresDashboardRepo) ListActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	query := `SELECT id, type, COALESCE(symbol, ''), description, amount, timestamp, status
		FROM activities
		ORDER BY timestamp DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var activityType, status string
		if err := rows.Scan(&a.ID, &activityType, &a.Symbol, &a.Description, &a.Amount, &a.Timestamp, &status); err != nil {
			return nil, err
		}
		a.Type = models.ActivityType(activityType)
		a.Status = models.ActivityStatus(status)
		if !a.Type.Valid() {
			return nil, fmt.Errorf("activity %s has unknown type %q", a.ID, activityType)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *postgresDashboardRepo) ListInsights(ctx context.Context) ([]models.Insight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, title, description, confidence, priority, COALESCE(action, '')
		FROM insights
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []models.Insight
	for rows.Next() {
		var i models.Insight
		var insightType, priority string
		if err := rows.Scan(&i.ID, &insightType, &i.Title, &i.Description, &i.Confidence, &priority, &i.Action); err != nil {
			return nil, err
		}
		i.Type = models.InsightType(insightType)
		i.Priority = models.Priority(priority)
		insights = append(insights, i)
	}
	return insights, rows.Err()
}

func (r *postgresDashboardRepo) GetSummary(ctx context.Context) (*models.Summary, error) {
	var s models.Summary
	err := r.db.QueryRow(ctx,
		`SELECT markdown FROM portfolio_summaries ORDER BY created_at DESC LIMIT 1`).Scan(&s.Markdown)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.Summary{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
