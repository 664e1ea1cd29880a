// Package rules holds the guideline thresholds spending is judged against.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RuleSet is replaced as a whole; there is no per-field patching after construction.
type RuleSet struct {
	HousingMax          decimal.Decimal // fraction of income
	SavingsMin          decimal.Decimal
	EntertainmentMax    decimal.Decimal
	EmergencyFundMonths int
}

// Default returns the standard guideline thresholds.
func Default() RuleSet {
	return RuleSet{
		HousingMax:          decimal.RequireFromString("0.30"),
		SavingsMin:          decimal.RequireFromString("0.20"),
		EntertainmentMax:    decimal.RequireFromString("0.10"),
		EmergencyFundMonths: 6,
	}
}

// ValidationError reports a rule value outside its allowed range.
type ValidationError struct {
	Field string
	Value string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %s: invalid value %s", e.Field, e.Value)
}

// Validate checks that fractions are within [0,1] and the month count is positive.
func (r RuleSet) Validate() error {
	one := decimal.NewFromInt(1)
	fractions := []struct {
		name string
		v    decimal.Decimal
	}{
		{"housing_max_fraction", r.HousingMax},
		{"savings_min_fraction", r.SavingsMin},
		{"entertainment_max_fraction", r.EntertainmentMax},
	}
	for _, f := range fractions {
		if f.v.IsNegative() || f.v.GreaterThan(one) {
			return ValidationError{Field: f.name, Value: f.v.String()}
		}
	}
	if r.EmergencyFundMonths <= 0 {
		return ValidationError{Field: "emergency_fund_months", Value: fmt.Sprint(r.EmergencyFundMonths)}
	}
	return nil
}

// File is the on-disk shape of a rule set, shared by YAML and TOML files.
type File struct {
	HousingMaxFraction       *float64 `yaml:"housing_max_fraction,omitempty" toml:"housing_max_fraction,omitempty"`
	SavingsMinFraction       *float64 `yaml:"savings_min_fraction,omitempty" toml:"savings_min_fraction,omitempty"`
	EntertainmentMaxFraction *float64 `yaml:"entertainment_max_fraction,omitempty" toml:"entertainment_max_fraction,omitempty"`
	EmergencyFundMonths      *int     `yaml:"emergency_fund_months,omitempty" toml:"emergency_fund_months,omitempty"`
}

// RuleSet overlays the file's values on the defaults.
func (f File) RuleSet() RuleSet {
	r := Default()
	if f.HousingMaxFraction != nil {
		r.HousingMax = decimal.NewFromFloat(*f.HousingMaxFraction)
	}
	if f.SavingsMinFraction != nil {
		r.SavingsMin = decimal.NewFromFloat(*f.SavingsMinFraction)
	}
	if f.EntertainmentMaxFraction != nil {
		r.EntertainmentMax = decimal.NewFromFloat(*f.EntertainmentMaxFraction)
	}
	if f.EmergencyFundMonths != nil {
		r.EmergencyFundMonths = *f.EmergencyFundMonths
	}
	return r
}

// ToFile converts a RuleSet to its on-disk shape with every field set.
func ToFile(r RuleSet) File {
	housing := r.HousingMax.InexactFloat64()
	savings := r.SavingsMin.InexactFloat64()
	entertainment := r.EntertainmentMax.InexactFloat64()
	months := r.EmergencyFundMonths
	return File{
		HousingMaxFraction:       &housing,
		SavingsMinFraction:       &savings,
		EntertainmentMaxFraction: &entertainment,
		EmergencyFundMonths:      &months,
	}
}

// Load reads a rules file. The format is chosen by extension: .toml for TOML,
// anything else is parsed as YAML.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules: %w", err)
	}

	var f File
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &f); err != nil {
			return RuleSet{}, fmt.Errorf("parsing rules: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return RuleSet{}, fmt.Errorf("parsing rules: %w", err)
		}
	}

	r := f.RuleSet()
	if err := r.Validate(); err != nil {
		return RuleSet{}, err
	}
	return r, nil
}

// Save writes a rule set in the format implied by path's extension.
func Save(path string, r RuleSet) error {
	f := ToFile(r)
	var data []byte
	if isTOML(path) {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(f); err != nil {
			return fmt.Errorf("marshaling rules: %w", err)
		}
		data = []byte(b.String())
	} else {
		var err error
		data, err = yaml.Marshal(f)
		if err != nil {
			return fmt.Errorf("marshaling rules: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
