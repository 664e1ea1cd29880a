package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/rules"
)

func newRulesCommand(a *app) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect or create spending rules",
	}
	rulesCmd.AddCommand(newRulesShowCommand(a), newRulesInitCommand())
	return rulesCmd
}

func newRulesShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the rules in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			source := a.cfg.RulesFile
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(out, "Rules (%s)\n", source)
			fmt.Fprintf(out, "  Housing max:         %s%%\n", a.rules.HousingMax.Shift(2).String())
			fmt.Fprintf(out, "  Savings min:         %s%%\n", a.rules.SavingsMin.Shift(2).String())
			fmt.Fprintf(out, "  Entertainment max:   %s%%\n", a.rules.EntertainmentMax.Shift(2).String())
			fmt.Fprintf(out, "  Emergency fund:      %d months\n", a.rules.EmergencyFundMonths)
			return nil
		},
	}
}

func newRulesInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default rules to a .yaml or .toml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rules.Save(args[0], rules.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default rules to %s\n", args[0])
			return nil
		},
	}
}
