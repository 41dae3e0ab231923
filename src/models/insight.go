package models

type InsightType string

const (
	InsightRecommendation InsightType = "recommendation"
	InsightWarning        InsightType = "warning"
	InsightOpportunity    InsightType = "opportunity"
	InsightAnalysis       InsightType = "analysis"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Insight is a simulated AI insight. Confidence is in [0,1].
type Insight struct {
	ID          string      `db:"id"`
	Type        InsightType `db:"type"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Confidence  float64     `db:"confidence"`
	Priority    Priority    `db:"priority"`
	Action      string      `db:"action"`
}

func (t InsightType) Icon() string {
	switch t {
	case InsightRecommendation:
		return "trending-up"
	case InsightWarning:
		return "alert-triangle"
	case InsightOpportunity:
		return "check-circle"
	case InsightAnalysis:
		return "brain"
	}
	return ""
}

func (p Priority) PriorityClass() string {
	switch p {
	case PriorityHigh:
		return "text-danger-600 bg-danger-50"
	case PriorityMedium:
		return "text-warning-600 bg-warning-50"
	case PriorityLow:
		return "text-success-600 bg-success-50"
	}
	return ""
}

// Summary is the markdown narrative shown under the insights.
type Summary struct {
	Markdown string `db:"markdown"`
}
