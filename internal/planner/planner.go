// Package planner suggests how to split an income across categories.
package planner

import (
	"github.com/shopspring/decimal"
)

// Share is one line of a suggested allocation.
type Share struct {
	Label    string
	Fraction decimal.Decimal
	Amount   decimal.Decimal
}

// Allocation is an ordered suggested budget.
type Allocation []Share

// The fractions sum to 1 and are independent of any custom rule set.
var fractions = []struct {
	label    string
	fraction string
}{
	{"Housing", "0.30"},
	{"Food", "0.15"},
	{"Transportation", "0.15"},
	{"Utilities", "0.10"},
	{"Savings", "0.20"},
	{"Entertainment", "0.05"},
	{"Healthcare", "0.03"},
	{"Other", "0.02"},
}

// SuggestedAllocation splits income using fixed fractions.
func SuggestedAllocation(income decimal.Decimal) Allocation {
	out := make(Allocation, 0, len(fractions))
	for _, f := range fractions {
		frac := decimal.RequireFromString(f.fraction)
		out = append(out, Share{
			Label:    f.label,
			Fraction: frac,
			Amount:   income.Mul(frac),
		})
	}
	return out
}

// Amount returns the suggested amount for a label.
func (a Allocation) Amount(label string) (decimal.Decimal, bool) {
	for _, s := range a {
		if s.Label == label {
			return s.Amount, true
		}
	}
	return decimal.Zero, false
}

// Total sums every share.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, s := range a {
		total = total.Add(s.Amount)
	}
	return total
}
