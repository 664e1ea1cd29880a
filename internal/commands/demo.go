package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/model"
)

type sampleExpense struct {
	category    model.Category
	amount      string
	description string
}

var demoExpenses = []sampleExpense{
	{model.CategoryHousing, "1200", "Rent payment"},
	{model.CategoryFood, "400", "Groceries"},
	{model.CategoryTransportation, "300", "Car payment + gas"},
	{model.CategoryUtilities, "150", "Electricity + Water"},
	{model.CategoryEntertainment, "200", "Movies + Dining out"},
	{model.CategorySavings, "500", "Monthly savings"},
}

var demoGoals = []struct {
	category model.Category
	target   string
	priority int
}{
	{model.CategoryHousing, "1300", 1},
	{model.CategoryFood, "350", 2},
	{model.CategorySavings, "600", 1},
}

func newDemoCommand(a *app) *cobra.Command {
	var income string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through a sample month and save it",
		Long: "Prompt for a monthly income (unless --income is given), load any existing budget, " +
			"add a set of sample expenses and goals, print the summary, and save.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if income == "" {
				var err error
				income, err = promptIncome()
				if err != nil {
					return err
				}
			}
			amount, err := parseAmount(income)
			if err != nil {
				return err
			}
			return runDemo(cmd, a, amount)
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "monthly income (prompted for when omitted)")

	return cmd
}

func promptIncome() (string, error) {
	var raw string
	err := huh.NewInput().
		Title("Enter your monthly income").
		Prompt("$ ").
		Value(&raw).
		Validate(func(s string) error {
			_, err := parseAmount(s)
			return err
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("reading income: %w", err)
	}
	return strings.TrimSpace(raw), nil
}

func runDemo(cmd *cobra.Command, a *app, income decimal.Decimal) error {
	out := cmd.OutOrStdout()
	r := a.renderer()

	l, loaded, err := a.open()
	if err != nil {
		return err
	}
	if loaded {
		fmt.Fprintf(out, "Budget data loaded from %s\n", a.store.Path())
	} else {
		l.SetIncome(income)
		fmt.Fprintf(out, "File %s not found. Starting with empty budget.\n", a.store.Path())
	}

	fmt.Fprintln(out, "\nAdding sample expenses...")
	for _, s := range demoExpenses {
		e := l.AddExpense(s.category, decimal.RequireFromString(s.amount), s.description)
		fmt.Fprintf(out, "Added expense: %s - %s\n", e.Description, r.Money(e.Amount))
	}

	fmt.Fprintln(out, "\nSetting budget goals...")
	for _, g := range demoGoals {
		goal := l.SetGoal(g.category, decimal.RequireFromString(g.target), g.priority)
		fmt.Fprintf(out, "Set budget goal: %s - %s\n", goal.Category.Label(), r.Money(goal.TargetAmount))
	}

	fmt.Fprintln(out)
	if err := r.Render(out, r.Build(l, a.rules)); err != nil {
		return err
	}

	if err := a.store.Save(l); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBudget data saved to %s\n", a.store.Path())
	return nil
}
