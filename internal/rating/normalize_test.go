package rating

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

func testCurve() rules.NormalizationCurve {
	return rules.NormalizationCurve{
		CollegeMale:      map[string]float64{"5": 0.0, "6": 0.2},
		NonCollegeMale:   map[string]float64{"5": 0.2, "6": 0.4, "16": 0.1, "17": 0.3},
		CollegeFemale:    map[string]float64{"13": 0.1, "14": 0.3},
		NonCollegeFemale: map[string]float64{"13": 0.0, "14": 0.2},
	}
}

func TestCurveCorrection(t *testing.T) {
	curve := testCurve()

	t.Run("integer rating takes the level value", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderMale, 5.0, 0)
		require.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("midpoint interpolates between levels", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderMale, 5.5, 0)
		require.InDelta(t, 0.3, got, 1e-9)
	})

	t.Run("college fraction blends the tables", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderMale, 5.5, 0.5)
		require.InDelta(t, 0.2, got, 1e-9)

		pure := curveCorrection(curve, domain.GenderMale, 5.5, 1)
		require.InDelta(t, 0.1, pure, 1e-9)
	})

	t.Run("male top level anchors at three quarters", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderMale, 16.4, 0)
		require.InDelta(t, 0.23, got, 1e-9)
	})

	t.Run("female top level anchors at three quarters", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderFemale, 13.2, 0)
		require.InDelta(t, 0.09, got, 1e-9)
	})

	t.Run("missing levels contribute nothing", func(t *testing.T) {
		got := curveCorrection(curve, domain.GenderMale, 9.0, 0)
		require.Equal(t, 0.0, got)
	})
}

func TestSmoothRating(t *testing.T) {
	tests := []struct {
		name        string
		gender      domain.Gender
		reliability float64
		rating      float64
		want        float64
	}{
		{"male above start damped by reliability", domain.GenderMale, 5, 15.5, 15.0},
		{"male above start fully reliable", domain.GenderMale, 10, 15.5, 15.5},
		{"male below start untouched", domain.GenderMale, 5, 10, 10},
		{"female above start damped", domain.GenderFemale, 5, 12.5, 12.0},
		{"floored at the bottom of the scale", domain.GenderMale, 5, 0.5, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothRating(tt.gender, tt.reliability, tt.rating)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestApplyCorrection(t *testing.T) {
	clay := 5.0
	grand := 15.0
	sub := &domain.SubRatings{
		ClayCourt:        &clay,
		GrandSlamMasters: &grand,
	}

	applyCorrection(sub, domain.GenderMale, 5, 1.0)

	require.Nil(t, sub.HardCourt)
	require.InDelta(t, 6.0, *sub.ClayCourt, 1e-9)
	// 16.0 after the shift, then smoothed at half reliability
	require.InDelta(t, 15.25, *sub.GrandSlamMasters, 1e-9)
}
