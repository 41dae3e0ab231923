package models

// WealthMetrics is the headline view of a client's wealth. Returns and
// changes are percentages, amounts are in the dashboard currency.
type WealthMetrics struct {
	TotalValue          float64 `db:"total_value"`
	TotalChange         float64 `db:"total_change"`
	TotalChangePercent  float64 `db:"total_change_percent"`
	CashBalance         float64 `db:"cash_balance"`
	InvestedAmount      float64 `db:"invested_amount"`
	DailyReturn         float64 `db:"daily_return"`
	MonthlyReturn       float64 `db:"monthly_return"`
	YearlyReturn        float64 `db:"yearly_return"`
	BenchmarkReturn     float64 `db:"benchmark_return"`
	WeeklyActivityTotal float64 `db:"weekly_activity_total"`
}
