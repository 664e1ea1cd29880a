// Package analyzer compares a ledger's spending against a rule set.
package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
)

// Health classifies overall solvency for the period.
type Health string

const (
	HealthGood       Health = "good"
	HealthConcerning Health = "concerning"
	HealthCritical   Health = "critical"
)

var (
	hundred = decimal.NewFromInt(100)
	// concerningFraction is the share of income below which a positive remainder is flagged.
	concerningFraction = decimal.RequireFromString("0.10")
)

// Line is one category's spending and its share of income.
type Line struct {
	Amount     decimal.Decimal
	Percentage decimal.Decimal // 0-100
}

// Result is the outcome of Analyze.
type Result struct {
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	RemainingBudget decimal.Decimal
	Breakdown       map[model.Category]Line
	Order           []model.Category // breakdown keys in first-seen order
	Health          Health
}

// Analyze computes totals, per-category percentages, and budget health.
func Analyze(l *ledger.Ledger) Result {
	income := l.Income()
	totals := l.CategoryTotals()

	res := Result{
		TotalIncome:     income,
		TotalExpenses:   l.TotalExpenses(),
		RemainingBudget: l.RemainingBudget(),
		Breakdown:       make(map[model.Category]Line, len(totals)),
		Order:           l.Categories(),
	}
	for c, amount := range totals {
		res.Breakdown[c] = Line{Amount: amount, Percentage: Percentage(amount, income)}
	}
	res.Health = Classify(res.RemainingBudget, income)
	return res
}

// Percentage returns amount as a percentage of income, or 0 when income is 0.
func Percentage(amount, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(income)
}

// Classify derives health from the remaining budget. A negative remainder is
// critical; a remainder under 10% of income is concerning.
func Classify(remaining, income decimal.Decimal) Health {
	switch {
	case remaining.IsNegative():
		return HealthCritical
	case remaining.LessThan(income.Mul(concerningFraction)):
		return HealthConcerning
	default:
		return HealthGood
	}
}

// Amount returns the spending recorded for a category, or zero.
func (r Result) Amount(c model.Category) decimal.Decimal {
	return r.Breakdown[c].Amount
}
