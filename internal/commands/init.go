package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/config"
	"github.com/budgetwise/budgetwise/internal/ledger"
)

func newInitCommand(a *app) *cobra.Command {
	var income string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new budget file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := parseAmount(income)
			if err != nil {
				return err
			}
			return runInit(cmd, a, amount, force)
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "monthly income (required)")
	_ = cmd.MarkFlagRequired("income")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing budget file")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, income decimal.Decimal, force bool) error {
	if _, err := os.Stat(a.store.Path()); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", a.store.Path())
	}

	if err := a.store.Save(ledger.New(income)); err != nil {
		return err
	}

	// Write a config file next to the data if none exists yet.
	cfgPath := a.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(cfgPath, a.cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized budget at %s with monthly income %s\n",
		a.store.Path(), a.renderer().Money(income))
	return nil
}
