package schemas

import "time"

// WealthView is the wealth overview with every figure formatted for display.
type WealthView struct {
	TotalValue         string `json:"totalValue"`
	TotalChange        string `json:"totalChange"`
	TotalChangePercent string `json:"totalChangePercent"`
	ChangeClass        string `json:"changeClass"`
	Trend              string `json:"trend"`
	CashBalance        string `json:"cashBalance"`
	CashShare          string `json:"cashShare"`
	InvestedAmount     string `json:"investedAmount"`
	InvestedShare      string `json:"investedShare"`
	DailyReturn        string `json:"dailyReturn"`
	DailyReturnClass   string `json:"dailyReturnClass"`
	MonthlyReturn      string `json:"monthlyReturn"`
	MonthlyReturnClass string `json:"monthlyReturnClass"`
	YearlyReturn       string `json:"yearlyReturn"`
	YearlyReturnClass  string `json:"yearlyReturnClass"`
	Benchmark          string `json:"benchmark"`
}

type HoldingView struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	ShortName     string `json:"shortName"`
	Quantity      string `json:"quantity"`
	CurrentPrice  string `json:"currentPrice"`
	CurrentValue  string `json:"currentValue"`
	ChangePercent string `json:"changePercent"`
	ChangeClass   string `json:"changeClass"`
	Trend         string `json:"trend"`
	Allocation    string `json:"allocation"`
	Sector        string `json:"sector"`
}

type PortfolioView struct {
	Holdings      []HoldingView `json:"holdings"`
	TotalValue    string        `json:"totalValue"`
	HoldingsCount int           `json:"holdingsCount"`
	TodayChange   string        `json:"todayChange"`
	Sectors       []SectorView  `json:"sectors"`
}

type SectorView struct {
	Sector     string `json:"sector"`
	Value      string `json:"value"`
	Allocation string `json:"allocation"`
}

type ActivityView struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Symbol       string `json:"symbol,omitempty"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	AmountClass  string `json:"amountClass"`
	Icon         string `json:"icon"`
	RelativeTime string `json:"relativeTime"`
	Timestamp    string `json:"timestamp"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	StatusClass  string `json:"statusClass"`
}

type ActivitySummaryView struct {
	Activities   []ActivityView `json:"activities"`
	WeekTotal    string         `json:"weekTotal"`
	Transactions int            `json:"transactions"`
}

type InsightView struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Icon          string `json:"icon"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Excerpt       string `json:"excerpt"`
	Confidence    string `json:"confidence"`
	Priority      string `json:"priority"`
	PriorityClass string `json:"priorityClass"`
	Action        string `json:"action,omitempty"`
}

type InsightsView struct {
	Insights       []InsightView `json:"insights"`
	Summary        string        `json:"summary"`
	SummaryHTML    string        `json:"summaryHtml"`
	SummaryExcerpt string        `json:"summaryExcerpt"`
}

// DashboardView is a full snapshot of the dashboard.
type DashboardView struct {
	ID          string              `json:"id"`
	Currency    string              `json:"currency"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Wealth      WealthView          `json:"wealth"`
	Portfolio   PortfolioView       `json:"portfolio"`
	Activity    ActivitySummaryView `json:"activity"`
	Insights    InsightsView        `json:"insights"`
}
