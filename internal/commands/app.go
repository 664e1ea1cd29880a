package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgetwise/budgetwise/internal/config"
	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/logging"
	"github.com/budgetwise/budgetwise/internal/model"
	"github.com/budgetwise/budgetwise/internal/report"
	"github.com/budgetwise/budgetwise/internal/rules"
	"github.com/budgetwise/budgetwise/internal/store"
)

// app carries state shared by every subcommand, resolved once per run.
type app struct {
	configPath string
	dataPath   string
	rulesPath  string
	getenv     func(string) string

	cfg   *config.Config
	log   zerolog.Logger
	rules rules.RuleSet
	store *store.Store
}

// setup resolves config in order: file, environment, flags.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.getenv)
	if a.dataPath != "" {
		cfg.DataFile = a.dataPath
	}
	if a.rulesPath != "" {
		cfg.RulesFile = a.rulesPath
	}
	a.cfg = cfg

	a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.rules = rules.Default()
	if cfg.RulesFile != "" {
		a.rules, err = rules.Load(cfg.RulesFile)
		if err != nil {
			return err
		}
		a.log.Debug().Str("rules", cfg.RulesFile).Msg("custom rules applied")
	}

	a.store = store.New(cfg.DataFile, a.log)
	return nil
}

// open loads the ledger from the data file, or returns an empty one.
func (a *app) open() (*ledger.Ledger, bool, error) {
	l := ledger.New(decimal.Zero)
	loaded, err := a.store.Load(l)
	if err != nil {
		return nil, false, err
	}
	return l, loaded, nil
}

func (a *app) renderer() *report.Renderer {
	return report.NewRenderer(a.cfg.CurrencySymbol)
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseCategoryArg accepts a label in any case, e.g. "debt payment".
func parseCategoryArg(s string) (model.Category, error) {
	for _, c := range model.Categories() {
		if strings.EqualFold(c.Label(), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return model.ParseCategory(s)
}
