package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
)

func TestDefault(t *testing.T) {
	rule := Default(domain.RatingSingles)

	require.Equal(t, 30, rule.NumberOfResults)
	require.Equal(t, 10.0, rule.MaxReliability)
	require.Equal(t, 2.5, rule.MaxRatingDelta)
	require.Equal(t, 0.16, rule.CloseMatchMaxRatingDelta)
	require.Equal(t, 0.1, rule.BenchmarkMatchCoefficient)
	require.Equal(t, 3, rule.DisconnectedPoolThreshold)
	require.True(t, rule.EnableMatchCompetitivenessCoefficient)
	require.False(t, rule.EnableCompetitivenessFilter)
	require.Contains(t, rule.CollegeImportTypes, int64(6))
	require.Contains(t, rule.CollegeImportSubTypes, "LTATour")
}

func TestCurveValue(t *testing.T) {
	table := map[string]float64{"0": 99, "5": 0.3}

	require.Equal(t, 0.3, CurveValue(table, "5"))
	require.Equal(t, 0.0, CurveValue(table, "7"))
	// level zero never contributes, even when the table carries a value
	require.Equal(t, 0.0, CurveValue(table, "0"))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
[singles]
number_of_results = 12

[singles.curve.non_college_male]
"5" = 0.25

[doubles]
min_partner_frequency_factor = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 12, cfg.Singles.NumberOfResults)
	require.Equal(t, 0.25, cfg.Singles.Curve.NonCollegeMale["5"])
	require.Equal(t, 0.5, cfg.Doubles.MinPartnerFrequencyFactor)

	// untouched keys keep their defaults
	require.Equal(t, 10.0, cfg.Singles.MaxReliability)
	require.Equal(t, 30, cfg.Doubles.NumberOfResults)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
