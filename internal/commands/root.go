package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{getenv: os.Getenv}

	rootCmd := &cobra.Command{
		Use:     "budgetwise",
		Short:   "Personal budget tracking and advice",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default budgetwise.yaml)")
	flags.StringVar(&a.dataPath, "data", "", "budget data file (overrides config)")
	flags.StringVar(&a.rulesPath, "rules", "", "rules file, .yaml or .toml (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newIncomeCommand(a),
		newAddCommand(a),
		newGoalCommand(a),
		newImportCommand(a),
		newExportCommand(a),
		newSummaryCommand(a),
		newAnalyzeCommand(a),
		newRecommendCommand(a),
		newPlanCommand(a),
		newCategoriesCommand(),
		newRulesCommand(a),
		newDemoCommand(a),
	)

	return rootCmd
}
