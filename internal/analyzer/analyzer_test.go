package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAnalyze_Breakdown(t *testing.T) {
	l := ledger.New(dec("4000"))
	l.AddExpense(model.CategoryHousing, dec("1200"), "Rent")
	l.AddExpense(model.CategoryFood, dec("300"), "Groceries")
	l.AddExpense(model.CategoryFood, dec("100"), "Takeout")

	res := Analyze(l)
	assert.True(t, res.TotalIncome.Equal(dec("4000")))
	assert.True(t, res.TotalExpenses.Equal(dec("1600")))
	assert.True(t, res.RemainingBudget.Equal(dec("2400")))
	assert.Equal(t, HealthGood, res.Health)

	require.Len(t, res.Breakdown, 2)
	assert.True(t, res.Breakdown[model.CategoryHousing].Amount.Equal(dec("1200")))
	assert.True(t, res.Breakdown[model.CategoryHousing].Percentage.Equal(dec("30")))
	assert.True(t, res.Breakdown[model.CategoryFood].Percentage.Equal(dec("10")))
	assert.Equal(t, []model.Category{model.CategoryHousing, model.CategoryFood}, res.Order)

	assert.True(t, res.Amount(model.CategorySavings).IsZero())
}

func TestAnalyze_ZeroIncome(t *testing.T) {
	l := ledger.New(decimal.Zero)
	l.AddExpense(model.CategoryFood, dec("50"), "Groceries")

	res := Analyze(l)
	assert.True(t, res.Breakdown[model.CategoryFood].Percentage.IsZero())
	assert.Equal(t, HealthCritical, res.Health)
}

func TestHealthBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		income  string
		amounts []string
		want    Health
	}{
		{"exactly spent", "1000", []string{"600", "400"}, HealthConcerning},
		{"one over", "1000", []string{"600", "401"}, HealthCritical},
		{"just under ten percent left", "1000", []string{"900.01"}, HealthConcerning},
		{"exactly ten percent left", "1000", []string{"900"}, HealthGood},
		{"nothing spent", "1000", nil, HealthGood},
		{"zero income no spend", "0", nil, HealthGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New(dec(tt.income))
			for _, a := range tt.amounts {
				l.AddExpense(model.CategoryOther, dec(a), "x")
			}
			assert.Equal(t, tt.want, Analyze(l).Health)
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.True(t, Percentage(dec("250"), dec("1000")).Equal(dec("25")))
	assert.True(t, Percentage(dec("250"), decimal.Zero).IsZero())
	assert.True(t, Percentage(dec("-100"), dec("1000")).Equal(dec("-10")))
}
