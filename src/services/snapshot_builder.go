package services

import (
	"time"

	"fingenius/src/models"
	"fingenius/src/schemas"
	"fingenius/src/utils"
)

// viewBuilder formats raw figures into display strings. The first
// formatting error sticks and later calls become no-ops.
type viewBuilder struct {
	code string
	now  time.Time
	err  error
}

func (s *DashboardService) newBuilder() *viewBuilder {
	return &viewBuilder{code: s.currency, now: s.now()}
}

func (b *viewBuilder) currency(v float64) string {
	if b.err != nil {
		return ""
	}
	out, err := utils.FormatCurrency(v, b.code)
	b.err = err
	return out
}

func (b *viewBuilder) percent(v float64, decimals int) string {
	if b.err != nil {
		return ""
	}
	out, err := utils.FormatPercentage(v, decimals)
	b.err = err
	return out
}

func (b *viewBuilder) signedPercent(v float64) string {
	return utils.SignPrefix(v) + b.percent(v, 2)
}

func (b *viewBuilder) number(v float64) string {
	if b.err != nil {
		return ""
	}
	out, err := utils.FormatNumber(v)
	b.err = err
	return out
}

// share is part as a percentage of whole, 0 when whole is 0.
func share(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

func trend(v float64) string {
	switch {
	case v > 0:
		return "up"
	case v < 0:
		return "down"
	}
	return "flat"
}

func (b *viewBuilder) wealth(w *models.WealthMetrics) schemas.WealthView {
	return schemas.WealthView{
		TotalValue:         b.currency(w.TotalValue),
		TotalChange:        utils.SignPrefix(w.TotalChange) + b.currency(w.TotalChange),
		TotalChangePercent: b.signedPercent(w.TotalChangePercent),
		ChangeClass:        string(utils.ChangeColorClass(w.TotalChange)),
		Trend:              trend(w.TotalChange),
		CashBalance:        b.currency(w.CashBalance),
		CashShare:          b.percent(share(w.CashBalance, w.TotalValue), 1),
		InvestedAmount:     b.currency(w.InvestedAmount),
		InvestedShare:      b.percent(share(w.InvestedAmount, w.TotalValue), 1),
		DailyReturn:        b.signedPercent(w.DailyReturn),
		DailyReturnClass:   string(utils.ChangeColorClass(w.DailyReturn)),
		MonthlyReturn:      b.signedPercent(w.MonthlyReturn),
		MonthlyReturnClass: string(utils.ChangeColorClass(w.MonthlyReturn)),
		YearlyReturn:       b.signedPercent(w.YearlyReturn),
		YearlyReturnClass:  string(utils.ChangeColorClass(w.YearlyReturn)),
		Benchmark:          b.signedPercent(w.BenchmarkReturn),
	}
}

func (b *viewBuilder) portfolio(holdings []models.Holding, sectors []utils.SectorTotal) schemas.PortfolioView {
	var total, todayChange float64
	views := make([]schemas.HoldingView, 0, len(holdings))
	for _, h := range holdings {
		total += h.CurrentValue
		todayChange += h.CurrentValue * h.ChangePercent / 100
		views = append(views, schemas.HoldingView{
			ID:            h.ID,
			Symbol:        h.Symbol,
			Name:          h.Name,
			ShortName:     utils.TruncateText(h.Name, 20),
			Quantity:      b.number(h.Quantity),
			CurrentPrice:  b.currency(h.CurrentPrice),
			CurrentValue:  b.currency(h.CurrentValue),
			ChangePercent: b.signedPercent(h.ChangePercent),
			ChangeClass:   string(utils.ChangeColorClass(h.ChangePercent)),
			Trend:         trend(h.ChangePercent),
			Allocation:    b.percent(h.Allocation, 1),
			Sector:        h.Sector,
		})
	}

	sectorViews := make([]schemas.SectorView, 0, len(sectors))
	for _, st := range sectors {
		sectorViews = append(sectorViews, schemas.SectorView{
			Sector:     st.Sector,
			Value:      b.currency(st.Value),
			Allocation: b.percent(st.Allocation, 1),
		})
	}

	return schemas.PortfolioView{
		Holdings:      views,
		TotalValue:    b.currency(total),
		HoldingsCount: len(holdings),
		TodayChange:   utils.SignPrefix(todayChange) + b.currency(todayChange),
		Sectors:       sectorViews,
	}
}

func (b *viewBuilder) activities(activities []models.Activity) []schemas.ActivityView {
	views := make([]schemas.ActivityView, 0, len(activities))
	for _, a := range activities {
		sign, class := "-", utils.NegativeChange
		if a.IsInflow() {
			sign, class = "+", utils.PositiveChange
		}
		views = append(views, schemas.ActivityView{
			ID:           a.ID,
			Type:         string(a.Type),
			Symbol:       a.Symbol,
			Description:  a.Description,
			Amount:       sign + b.currency(a.Amount),
			AmountClass:  string(class),
			Icon:         a.Icon(),
			RelativeTime: utils.FormatRelativeTime(a.Timestamp, b.now),
			Timestamp:    a.Timestamp.UTC().Format(time.RFC3339),
			Status:       string(a.Status),
			StatusLabel:  utils.Capitalize(string(a.Status)),
			StatusClass:  a.Status.StatusClass(),
		})
	}
	return views
}

func (b *viewBuilder) insights(insights []models.Insight) []schemas.InsightView {
	views := make([]schemas.InsightView, 0, len(insights))
	for _, in := range insights {
		views = append(views, schemas.InsightView{
			ID:            in.ID,
			Type:          string(in.Type),
			Icon:          in.Type.Icon(),
			Title:         in.Title,
			Description:   in.Description,
			Excerpt:       utils.TruncateText(in.Description, 80),
			Confidence:    utils.FormatConfidence(in.Confidence),
			Priority:      string(in.Priority),
			PriorityClass: in.Priority.PriorityClass(),
			Action:        in.Action,
		})
	}
	return views
}
