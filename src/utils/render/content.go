package render

import (
	"html/template"

	"fingenius/src/schemas"
)

type Card struct {
	Title       string
	Description string
}

type HomeContent struct {
	Features []Card
}

type AboutContent struct {
	Values []Card
}

type DashboardContent struct {
	View        schemas.DashboardView
	SummaryHTML template.HTML
}

var DefaultHome = HomeContent{
	Features: []Card{
		{Title: "AI-Powered Insights", Description: "Advanced machine learning algorithms analyze market trends and your financial goals to provide personalized investment recommendations."},
		{Title: "Portfolio Optimization", Description: "Real-time portfolio rebalancing and risk assessment to maximize returns while maintaining your desired risk profile."},
		{Title: "Bank-Grade Security", Description: "Enterprise-level security with end-to-end encryption and regulatory compliance to protect your financial data."},
		{Title: "Real-Time Monitoring", Description: "24/7 market monitoring with instant alerts and automated responses to market changes and opportunities."},
		{Title: "Expert Guidance", Description: "Access to certified financial advisors combined with AI insights for comprehensive wealth management."},
		{Title: "Goal-Based Planning", Description: "Set and track financial goals with intelligent planning tools that adapt to your changing life circumstances."},
	},
}

var DefaultAbout = AboutContent{
	Values: []Card{
		{Title: "transparency", Description: "Every recommendation comes with the reasoning and confidence behind it."},
		{Title: "security", Description: "Client data is encrypted in transit and at rest, and never sold."},
		{Title: "personalization", Description: "Strategies are built around your goals, horizon and appetite for risk."},
	},
}
