// Package data holds the compiled-in dashboard dataset served when no
// database is configured.
package data

import (
	"time"

	"fingenius/src/models"
)

var Wealth = models.WealthMetrics{
	TotalValue:          1250000,
	TotalChange:         12500,
	TotalChangePercent:  1.01,
	CashBalance:         75000,
	InvestedAmount:      1175000,
	DailyReturn:         0.15,
	MonthlyReturn:       2.3,
	YearlyReturn:        12.5,
	BenchmarkReturn:     8.5,
	WeeklyActivityTotal: 6749.50,
}

var Holdings = []models.Holding{
	{
		ID:            "1",
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Quantity:      100,
		CurrentPrice:  150.25,
		CurrentValue:  15025,
		ChangePercent: 2.5,
		Allocation:    12.8,
		Sector:        "Technology",
	},
	{
		ID:            "2",
		Symbol:        "MSFT",
		Name:          "Microsoft Corporation",
		Quantity:      50,
		CurrentPrice:  320.75,
		CurrentValue:  16037.5,
		ChangePercent: -0.8,
		Allocation:    13.7,
		Sector:        "Technology",
	},
	{
		ID:            "3",
		Symbol:        "VTI",
		Name:          "Vanguard Total Stock Market ETF",
		Quantity:      200,
		CurrentPrice:  245.50,
		CurrentValue:  49100,
		ChangePercent: 1.2,
		Allocation:    41.9,
		Sector:        "ETF",
	},
	{
		ID:            "4",
		Symbol:        "BND",
		Name:          "Vanguard Total Bond Market ETF",
		Quantity:      150,
		CurrentPrice:  78.25,
		CurrentValue:  11737.5,
		ChangePercent: 0.3,
		Allocation:    10.0,
		Sector:        "Bonds",
	},
}

var Activities = []models.Activity{
	{
		ID:          "1",
		Type:        models.ActivityBuy,
		Symbol:      "AAPL",
		Description: "Bought 10 shares of Apple Inc.",
		Amount:      1502.50,
		Timestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Status:      models.StatusCompleted,
	},
	{
		ID:          "2",
		Type:        models.ActivityDividend,
		Symbol:      "VTI",
		Description: "Dividend received from Vanguard Total Stock Market ETF",
		Amount:      245.75,
		Timestamp:   time.Date(2024, 1, 14, 9, 15, 0, 0, time.UTC),
		Status:      models.StatusCompleted,
	},
	{
		ID:          "3",
		Type:        models.ActivitySell,
		Symbol:      "TSLA",
		Description: "Sold 5 shares of Tesla Inc.",
		Amount:      1250.00,
		Timestamp:   time.Date(2024, 1, 13, 14, 45, 0, 0, time.UTC),
		Status:      models.StatusCompleted,
	},
	{
		ID:          "4",
		Type:        models.ActivityDeposit,
		Description: "Deposit from bank account",
		Amount:      5000.00,
		Timestamp:   time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC),
		Status:      models.StatusCompleted,
	},
	{
		ID:          "5",
		Type:        models.ActivityBuy,
		Symbol:      "MSFT",
		Description: "Bought 15 shares of Microsoft Corporation",
		Amount:      4811.25,
		Timestamp:   time.Date(2024, 1, 11, 11, 20, 0, 0, time.UTC),
		Status:      models.StatusPending,
	},
}

var Insights = []models.Insight{
	{
		ID:          "1",
		Type:        models.InsightRecommendation,
		Title:       "Rebalance Portfolio",
		Description: "Your technology allocation has grown to 26.5% of your portfolio. Consider rebalancing to maintain your target allocation of 20%.",
		Confidence:  0.92,
		Priority:    models.PriorityHigh,
		Action:      "View Rebalancing Options",
	},
	{
		ID:          "2",
		Type:        models.InsightOpportunity,
		Title:       "Tax-Loss Harvesting Opportunity",
		Description: "You have unrealized losses in MSFT that could be harvested for tax benefits. Consider selling and replacing with a similar security.",
		Confidence:  0.87,
		Priority:    models.PriorityMedium,
		Action:      "Review Tax Strategy",
	},
	{
		ID:          "3",
		Type:        models.InsightAnalysis,
		Title:       "Portfolio Risk Assessment",
		Description: "Your current portfolio has a Sharpe ratio of 1.2, which is above your target of 1.0. Risk-adjusted returns are performing well.",
		Confidence:  0.95,
		Priority:    models.PriorityLow,
	},
	{
		ID:          "4",
		Type:        models.InsightWarning,
		Title:       "Concentration Risk",
		Description: "Your top 3 holdings represent 68.4% of your portfolio. Consider diversifying to reduce concentration risk.",
		Confidence:  0.78,
		Priority:    models.PriorityMedium,
		Action:      "Diversification Analysis",
	},
}

var Summary = models.Summary{
	Markdown: "Your portfolio is performing well with a **12.5% YTD return**, outperforming the S&P 500 by 4.2%.\n" +
		"The AI recommends focusing on *rebalancing* and *tax optimization* opportunities in the coming quarter.",
}
