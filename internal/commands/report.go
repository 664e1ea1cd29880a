package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/analyzer"
	"github.com/budgetwise/budgetwise/internal/planner"
	"github.com/budgetwise/budgetwise/internal/report"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the full budget summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := a.open()
			if err != nil {
				return err
			}
			r := a.renderer()
			return r.Render(cmd.OutOrStdout(), r.Build(l, a.rules))
		},
	}
}

func newAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Show totals, category breakdown, and goal progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := a.open()
			if err != nil {
				return err
			}
			r := a.renderer()
			res := analyzer.Analyze(l)
			return writeSections(cmd.OutOrStdout(),
				r.Overview(res),
				r.Breakdown(res),
				r.Goals(report.GoalStatuses(l)),
			)
		},
	}
}

func newRecommendCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Show spending recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _, err := a.open()
			if err != nil {
				return err
			}
			r := a.renderer()
			recs := analyzer.Recommendations(l, a.rules, analyzer.WithMoneyFormat(r.Money))
			return writeSections(cmd.OutOrStdout(), r.Recommendations(recs))
		},
	}
}

func newPlanCommand(a *app) *cobra.Command {
	var income string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show a suggested budget allocation",
		Long:  "Show a suggested budget allocation for the saved income, or for --income without reading the budget file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var alloc planner.Allocation
			if income != "" {
				amount, err := parseAmount(income)
				if err != nil {
					return err
				}
				alloc = planner.SuggestedAllocation(amount)
			} else {
				l, _, err := a.open()
				if err != nil {
					return err
				}
				alloc = planner.SuggestedAllocation(l.Income())
			}
			return writeSections(cmd.OutOrStdout(), a.renderer().Allocation(alloc))
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "plan for this income instead of the saved one")

	return cmd
}

func writeSections(w io.Writer, sections ...string) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
