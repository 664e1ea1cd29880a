package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/importer"
	"github.com/budgetwise/budgetwise/internal/model"
)

func newIncomeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "income <amount>",
		Short: "Set the monthly income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			l, _, err := a.open()
			if err != nil {
				return err
			}
			l.SetIncome(amount)
			if err := a.store.Save(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly income set to %s\n", a.renderer().Money(amount))
			return nil
		},
	}
}

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <category> <amount> <description...>",
		Short: "Record an expense dated today",
		Long: "Record an expense dated today. A negative amount records a credit such as a refund.\n" +
			"Flags must come before the category; everything after it is taken as arguments.",
		Example: "  budgetwise add Food 42.50 Groceries\n" +
			"  budgetwise add \"Debt Payment\" 300 Credit card\n" +
			"  budgetwise add Food -50 Refund",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategoryArg(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			l, _, err := a.open()
			if err != nil {
				return err
			}
			e := l.AddExpense(cat, amount, strings.Join(args[2:], " "))
			if err := a.store.Save(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense: %s - %s\n", e.Description, a.renderer().Money(e.Amount))
			return nil
		},
	}

	// Stop flag parsing at the category so "-50" reaches RunE as an amount.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newGoalCommand(a *app) *cobra.Command {
	var priority int

	cmd := &cobra.Command{
		Use:   "goal <category> <target>",
		Short: "Set the budget goal for a category",
		Long:  "Set the budget goal for a category, replacing any existing goal for it. Priority 1 is highest.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategoryArg(args[0])
			if err != nil {
				return err
			}
			target, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			l, _, err := a.open()
			if err != nil {
				return err
			}
			g := l.SetGoal(cat, target, priority)
			if err := a.store.Save(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set budget goal: %s - %s\n", g.Category.Label(), a.renderer().Money(g.TargetAmount))
			return nil
		},
	}

	cmd.Flags().IntVar(&priority, "priority", model.DefaultPriority, "goal priority, 1 (highest) to 5")

	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Add expenses from a CSV file",
		Long:  "Add expenses from a CSV file with the header: " + importer.Header,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := a.open()
			if err != nil {
				return err
			}
			added, err := importer.ImportFile(l, args[0])
			if err != nil {
				return err
			}
			if err := a.store.Save(l); err != nil {
				return err
			}
			a.log.Info().Str("source", args[0]).Int("rows", len(added)).Msg("expenses imported")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expenses from %s\n", len(added), args[0])
			return nil
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Write expenses as CSV",
		Long:  "Write every expense as CSV in the format read by import. Writes to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := a.open()
			if err != nil {
				return err
			}
			expenses := l.Expenses()
			if len(args) == 0 {
				return importer.WriteExpenses(cmd.OutOrStdout(), expenses)
			}
			if err := importer.ExportFile(args[0], expenses); err != nil {
				return err
			}
			a.log.Info().Str("target", args[0]).Int("rows", len(expenses)).Msg("expenses exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", len(expenses), args[0])
			return nil
		},
	}
}

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range model.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c.Label())
			}
			return nil
		},
	}
}
