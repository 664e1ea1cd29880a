package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
)

// Document is the JSON shape of a saved budget.
type Document struct {
	MonthlyIncome json.Number     `json:"monthly_income"`
	Expenses      []ExpenseDoc    `json:"expenses"`
	BudgetGoals   []BudgetGoalDoc `json:"budget_goals"`
	LastUpdated   string          `json:"last_updated"`
}

// ExpenseDoc is one element of Document.Expenses.
type ExpenseDoc struct {
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

// BudgetGoalDoc is one element of Document.BudgetGoals.
type BudgetGoalDoc struct {
	Category     string      `json:"category"`
	TargetAmount json.Number `json:"target_amount"`
	Priority     int         `json:"priority"`
}

// ValidationError reports a document field that could not be converted.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e ValidationError) Unwrap() error { return e.Err }

// State is a fully decoded document, ready to restore into a Ledger.
type State struct {
	Income      decimal.Decimal
	Expenses    []model.Expense
	Goals       []model.BudgetGoal
	LastUpdated string
}

// Apply replaces the ledger's state with s.
func (s State) Apply(l *ledger.Ledger) {
	l.Restore(s.Income, s.Expenses, s.Goals)
}

// Decode reads and validates a document. Every failure is a ValidationError.
func Decode(r io.Reader) (State, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return State{}, ValidationError{Field: "document", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return State{}, ValidationError{Field: "document", Err: errors.New("unexpected data after document")}
	}
	return FromDocument(doc)
}

// FromDocument converts a Document into domain values.
func FromDocument(doc Document) (State, error) {
	if doc.MonthlyIncome == "" {
		return State{}, ValidationError{Field: "monthly_income", Err: errors.New("missing")}
	}
	income, err := parseAmount("monthly_income", doc.MonthlyIncome)
	if err != nil {
		return State{}, err
	}

	st := State{Income: income, LastUpdated: doc.LastUpdated}

	for i, ed := range doc.Expenses {
		e, err := unmarshalExpense(i, ed)
		if err != nil {
			return State{}, err
		}
		st.Expenses = append(st.Expenses, e)
	}

	for i, gd := range doc.BudgetGoals {
		g, err := unmarshalGoal(i, gd)
		if err != nil {
			return State{}, err
		}
		st.Goals = append(st.Goals, g)
	}

	return st, nil
}

func unmarshalExpense(i int, ed ExpenseDoc) (model.Expense, error) {
	prefix := fmt.Sprintf("expenses[%d]", i)

	cat, err := model.ParseCategory(ed.Category)
	if err != nil {
		return model.Expense{}, ValidationError{Field: prefix + ".category", Value: ed.Category, Err: err}
	}

	amount, err := parseAmount(prefix+".amount", ed.Amount)
	if err != nil {
		return model.Expense{}, err
	}

	date, err := time.Parse(model.DateFormat, ed.Date)
	if err != nil {
		return model.Expense{}, ValidationError{Field: prefix + ".date", Value: ed.Date, Err: err}
	}

	return model.Expense{
		Category:    cat,
		Amount:      amount,
		Description: ed.Description,
		Date:        date,
	}, nil
}

func unmarshalGoal(i int, gd BudgetGoalDoc) (model.BudgetGoal, error) {
	prefix := fmt.Sprintf("budget_goals[%d]", i)

	cat, err := model.ParseCategory(gd.Category)
	if err != nil {
		return model.BudgetGoal{}, ValidationError{Field: prefix + ".category", Value: gd.Category, Err: err}
	}

	target, err := parseAmount(prefix+".target_amount", gd.TargetAmount)
	if err != nil {
		return model.BudgetGoal{}, err
	}

	return model.BudgetGoal{Category: cat, TargetAmount: target, Priority: gd.Priority}, nil
}

func parseAmount(field string, n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero, ValidationError{Field: field, Value: string(n), Err: err}
	}
	return d, nil
}

// ToDocument converts a ledger into its JSON shape stamped with now.
func ToDocument(l *ledger.Ledger, now time.Time) Document {
	doc := Document{
		MonthlyIncome: json.Number(l.Income().String()),
		Expenses:      []ExpenseDoc{},
		BudgetGoals:   []BudgetGoalDoc{},
		LastUpdated:   now.Format(time.RFC3339Nano),
	}
	for _, e := range l.Expenses() {
		doc.Expenses = append(doc.Expenses, ExpenseDoc{
			Category:    e.Category.Label(),
			Amount:      json.Number(e.Amount.String()),
			Description: e.Description,
			Date:        e.Date.Format(model.DateFormat),
		})
	}
	for _, g := range l.Goals() {
		doc.BudgetGoals = append(doc.BudgetGoals, BudgetGoalDoc{
			Category:     g.Category.Label(),
			TargetAmount: json.Number(g.TargetAmount.String()),
			Priority:     g.Priority,
		})
	}
	return doc
}

// Encode writes the ledger as indented JSON.
func Encode(w io.Writer, l *ledger.Ledger, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(l, now)); err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	return nil
}
