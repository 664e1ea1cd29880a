// Package ledger holds a month's income, expenses, and budget goals.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/budgetwise/internal/model"
)

// Ledger is the aggregate root for one budget. It is not safe for concurrent use.
type Ledger struct {
	income   decimal.Decimal
	expenses []model.Expense
	goals    []model.BudgetGoal // at most one per category, insertion order
	now      func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to date new expenses.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty Ledger with the given monthly income.
func New(income decimal.Decimal, opts ...Option) *Ledger {
	l := &Ledger{income: income, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Income returns the monthly income.
func (l *Ledger) Income() decimal.Decimal {
	return l.income
}

// SetIncome replaces the monthly income.
func (l *Ledger) SetIncome(income decimal.Decimal) {
	l.income = income
}

// AddExpense records an expense dated today. The amount is not checked;
// a negative amount acts as a credit.
func (l *Ledger) AddExpense(category model.Category, amount decimal.Decimal, description string) model.Expense {
	return l.AddExpenseOn(category, amount, description, l.now())
}

// AddExpenseOn records an expense on the calendar day of date.
func (l *Ledger) AddExpenseOn(category model.Category, amount decimal.Decimal, description string, date time.Time) model.Expense {
	e := model.Expense{
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        model.Day(date),
	}
	l.expenses = append(l.expenses, e)
	return e
}

// SetGoal replaces any goal for the category and appends the new one.
func (l *Ledger) SetGoal(category model.Category, target decimal.Decimal, priority int) model.BudgetGoal {
	g := model.BudgetGoal{Category: category, TargetAmount: target, Priority: priority}
	l.goals = append(removeGoal(l.goals, category), g)
	return g
}

func removeGoal(goals []model.BudgetGoal, category model.Category) []model.BudgetGoal {
	kept := goals[:0]
	for _, g := range goals {
		if g.Category != category {
			kept = append(kept, g)
		}
	}
	return kept
}

// Expenses returns a copy of the expenses in the order they were added.
func (l *Ledger) Expenses() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Goals returns a copy of the goals in insertion order.
func (l *Ledger) Goals() []model.BudgetGoal {
	out := make([]model.BudgetGoal, len(l.goals))
	copy(out, l.goals)
	return out
}

// Goal returns the goal for a category, if one is set.
func (l *Ledger) Goal(category model.Category) (model.BudgetGoal, bool) {
	for _, g := range l.goals {
		if g.Category == category {
			return g, true
		}
	}
	return model.BudgetGoal{}, false
}

// GoalsByPriority returns the goals sorted by ascending priority.
// Goals with equal priority keep insertion order.
func (l *Ledger) GoalsByPriority() []model.BudgetGoal {
	out := l.Goals()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// CategoryTotals sums expenses per category. Categories without expenses are absent.
func (l *Ledger) CategoryTotals() map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, e := range l.expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// Categories returns the categories that have expenses, in first-seen order.
func (l *Ledger) Categories() []model.Category {
	seen := make(map[model.Category]bool)
	var out []model.Category
	for _, e := range l.expenses {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// TotalExpenses sums every expense amount regardless of sign.
func (l *Ledger) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// RemainingBudget is income minus all expenses. It may be negative.
func (l *Ledger) RemainingBudget() decimal.Decimal {
	return l.income.Sub(l.TotalExpenses())
}

// Restore replaces the ledger's whole state. Goals are deduplicated by
// category with the later entry winning.
func (l *Ledger) Restore(income decimal.Decimal, expenses []model.Expense, goals []model.BudgetGoal) {
	l.income = income
	l.expenses = make([]model.Expense, len(expenses))
	copy(l.expenses, expenses)
	l.goals = nil
	for _, g := range goals {
		l.goals = append(removeGoal(l.goals, g.Category), g)
	}
}
