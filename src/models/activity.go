package models

import "time"

type ActivityType string

const (
	ActivityBuy        ActivityType = "buy"
	ActivitySell       ActivityType = "sell"
	ActivityDividend   ActivityType = "dividend"
	ActivityDeposit    ActivityType = "deposit"
	ActivityWithdrawal ActivityType = "withdrawal"
)

type ActivityStatus string

const (
	StatusCompleted ActivityStatus = "completed"
	StatusPending   ActivityStatus = "pending"
	StatusFailed    ActivityStatus = "failed"
)

type Activity struct {
	ID          string         `db:"id"`
	Type        ActivityType   `db:"type"`
	Symbol      string         `db:"symbol"`
	Description string         `db:"description"`
	Amount      float64        `db:"amount"`
	Timestamp   time.Time      `db:"timestamp"`
	Status      ActivityStatus `db:"status"`
}

// IsInflow reports whether the activity adds money to the account. Buys
// count as inflows of the bought security.
func (a Activity) IsInflow() bool {
	switch a.Type {
	case ActivityBuy, ActivityDeposit, ActivityDividend:
		return true
	}
	return false
}

// Icon names the icon shown next to the activity.
func (a Activity) Icon() string {
	switch a.Type {
	case ActivityBuy, ActivityDeposit:
		return "arrow-up-right"
	case ActivitySell, ActivityWithdrawal:
		return "arrow-down-left"
	case ActivityDividend:
		return "dollar-sign"
	}
	return "clock"
}

// StatusClass returns the badge classes for a status.
func (s ActivityStatus) StatusClass() string {
	switch s {
	case StatusCompleted:
		return "text-success-600 bg-success-50"
	case StatusPending:
		return "text-warning-600 bg-warning-50"
	case StatusFailed:
		return "text-danger-600 bg-danger-50"
	}
	return ""
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityBuy, ActivitySell, ActivityDividend, ActivityDeposit, ActivityWithdrawal:
		return true
	}
	return false
}
