package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDefault(t *testing.T) {
	r := Default()
	assert.True(t, r.HousingMax.Equal(dec("0.30")))
	assert.True(t, r.SavingsMin.Equal(dec("0.20")))
	assert.True(t, r.EntertainmentMax.Equal(dec("0.10")))
	assert.Equal(t, 6, r.EmergencyFundMonths)
	require.NoError(t, r.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RuleSet)
		field  string
	}{
		{"housing above one", func(r *RuleSet) { r.HousingMax = dec("1.5") }, "housing_max_fraction"},
		{"negative savings", func(r *RuleSet) { r.SavingsMin = dec("-0.1") }, "savings_min_fraction"},
		{"entertainment above one", func(r *RuleSet) { r.EntertainmentMax = dec("2") }, "entertainment_max_fraction"},
		{"zero months", func(r *RuleSet) { r.EmergencyFundMonths = 0 }, "emergency_fund_months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Default()
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	edges := Default()
	edges.HousingMax = dec("1")
	edges.SavingsMin = dec("0")
	assert.NoError(t, edges.Validate())
}

func TestLoadYAML_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("savings_min_fraction: 0.25\nemergency_fund_months: 3\n"), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.True(t, r.SavingsMin.Equal(dec("0.25")))
	assert.Equal(t, 3, r.EmergencyFundMonths)
	assert.True(t, r.HousingMax.Equal(dec("0.30")), "unset fields keep defaults")
	assert.True(t, r.EntertainmentMax.Equal(dec("0.10")))
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := "housing_max_fraction = 0.35\nentertainment_max_fraction = 0.05\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.True(t, r.HousingMax.Equal(dec("0.35")))
	assert.True(t, r.EntertainmentMax.Equal(dec("0.05")))
	assert.True(t, r.SavingsMin.Equal(dec("0.20")))
}

func TestLoadInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("housing_max_fraction: 1.2\n"), 0o644))

	_, err := Load(path)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "housing_max_fraction", verr.Field)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	custom := RuleSet{
		HousingMax:          dec("0.28"),
		SavingsMin:          dec("0.15"),
		EntertainmentMax:    dec("0.08"),
		EmergencyFundMonths: 9,
	}
	for _, name := range []string{"rules.yaml", "rules.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, custom))

			got, err := Load(path)
			require.NoError(t, err)
			assert.True(t, got.HousingMax.Equal(custom.HousingMax))
			assert.True(t, got.SavingsMin.Equal(custom.SavingsMin))
			assert.True(t, got.EntertainmentMax.Equal(custom.EntertainmentMax))
			assert.Equal(t, custom.EmergencyFundMonths, got.EmergencyFundMonths)
		})
	}
}
