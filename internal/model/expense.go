package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used for expense dates.
const DateFormat = "2006-01-02"

// Expense is a single recorded spend. Negative amounts act as credits.
type Expense struct {
	Category    Category
	Amount      decimal.Decimal
	Description string
	Date        time.Time // calendar day, midnight UTC
}

// BudgetGoal is a spending target for one category.
type BudgetGoal struct {
	Category     Category
	TargetAmount decimal.Decimal
	Priority     int // 1 = highest, 5 = lowest
}

// DefaultPriority is used when a goal is set without an explicit priority.
const DefaultPriority = 3

// Day truncates t to its calendar day in t's location and returns it as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
