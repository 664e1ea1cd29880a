package analyzer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
	"github.com/budgetwise/budgetwise/internal/rules"
)

// Kind identifies which check produced a recommendation.
type Kind string

const (
	KindHousing       Kind = "housing"
	KindSavings       Kind = "savings"
	KindEntertainment Kind = "entertainment"
	KindOverspending  Kind = "overspending"
	KindEmergencyFund Kind = "emergency_fund"
)

// Recommendation is one piece of advice with the amount it quantifies.
type Recommendation struct {
	Kind   Kind
	Amount decimal.Decimal
	Text   string
}

func (r Recommendation) String() string { return r.Text }

// Option configures Recommendations.
type Option func(*options)

type options struct {
	money func(decimal.Decimal) string
}

// WithMoneyFormat sets how amounts are written into recommendation text.
// The default is "$" followed by two decimals.
func WithMoneyFormat(fn func(decimal.Decimal) string) Option {
	return func(o *options) { o.money = fn }
}

// Recommendations evaluates the rule set against the ledger. Items are emitted
// in a fixed order: housing, savings, entertainment, overspending, emergency
// fund. The emergency fund item is always present.
//
// With zero income the housing, savings and entertainment checks are skipped,
// the savings shortfall included. Overspending and the emergency fund are
// still reported.
func Recommendations(l *ledger.Ledger, rs rules.RuleSet, opts ...Option) []Recommendation {
	o := options{money: defaultMoney}
	for _, opt := range opts {
		opt(&o)
	}
	money := o.money

	income := l.Income()
	totals := l.CategoryTotals()
	var recs []Recommendation

	if !income.IsZero() {
		housing := totals[model.CategoryHousing]
		if limit := income.Mul(rs.HousingMax); housing.GreaterThan(limit) {
			excess := housing.Sub(limit)
			recs = append(recs, Recommendation{
				Kind:   KindHousing,
				Amount: excess,
				Text: fmt.Sprintf("Housing costs (%s) exceed recommended %s. Consider reducing by %s",
					percent(housing.Div(income)), percent(rs.HousingMax), money(excess)),
			})
		}

		savings := totals[model.CategorySavings]
		if floor := income.Mul(rs.SavingsMin); savings.LessThan(floor) {
			shortfall := floor.Sub(savings)
			recs = append(recs, Recommendation{
				Kind:   KindSavings,
				Amount: shortfall,
				Text: fmt.Sprintf("Increase savings to at least %s of income. Add %s to savings.",
					percent(rs.SavingsMin), money(shortfall)),
			})
		}

		entertainment := totals[model.CategoryEntertainment]
		if limit := income.Mul(rs.EntertainmentMax); entertainment.GreaterThan(limit) {
			excess := entertainment.Sub(limit)
			recs = append(recs, Recommendation{
				Kind:   KindEntertainment,
				Amount: excess,
				Text: fmt.Sprintf("Entertainment spending (%s) is high. Consider reducing by %s",
					percent(entertainment.Div(income)), money(excess)),
			})
		}
	}

	if remaining := l.RemainingBudget(); remaining.IsNegative() {
		deficit := remaining.Abs()
		recs = append(recs, Recommendation{
			Kind:   KindOverspending,
			Amount: deficit,
			Text: fmt.Sprintf("You're overspending by %s. Review expenses and cut non-essential items.",
				money(deficit)),
		})
	}

	target := income.Mul(decimal.NewFromInt(int64(rs.EmergencyFundMonths)))
	recs = append(recs, Recommendation{
		Kind:   KindEmergencyFund,
		Amount: target,
		Text: fmt.Sprintf("Build an emergency fund of %s (%d months of income) for financial security.",
			money(target), rs.EmergencyFundMonths),
	})

	return recs
}

func defaultMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// percent formats a fraction with one decimal, e.g. 0.3333 -> "33.3%".
func percent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(1) + "%"
}
