package rating

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
)

func TestFormatReliability(t *testing.T) {
	rule := testRule()
	tests := []struct {
		name   string
		winner [5]int
		loser  [5]int
		want   float64
	}{
		{
			name:   "best of three",
			winner: [5]int{6, 6},
			loser:  [5]int{3, 4},
			want:   1.0,
		},
		{
			name:   "best of five",
			winner: [5]int{6, 4, 6, 6},
			loser:  [5]int{4, 6, 3, 4},
			want:   1.0,
		},
		{
			name:   "pro set",
			winner: [5]int{8},
			loser:  [5]int{5},
			want:   0.7,
		},
		{
			name:   "mini set",
			winner: [5]int{4},
			loser:  [5]int{2},
			want:   0.4,
		},
		{
			name:   "one set",
			winner: [5]int{6},
			loser:  [5]int{4},
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResult(1, 1, 2, tt.winner, tt.loser)
			got, err := formatReliability(&r, rule)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatReliabilityDNF(t *testing.T) {
	rule := testRule()
	want := map[int]float64{0: 0, 1: 0.5, 2: 0.8, 3: 0.9, 4: 0.95}
	for completed, expected := range want {
		r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{3, 4})
		r.DNF = true
		r.CompletedSets = completed
		got, err := formatReliability(&r, rule)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}

	r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{3, 4})
	r.DNF = true
	r.CompletedSets = 5
	_, err := formatReliability(&r, rule)
	require.ErrorIs(t, err, ErrCompletedSetsOutOfRange)
}

func TestInterpoolCoefficient(t *testing.T) {
	rule := testRule()
	rule.InterpoolCoefficientCollege = 0.8
	rule.InterpoolCoefficientCountry = 0.9

	college := testPlayer(1, domain.GenderMale, 5, 10)
	college.CollegeID = 7
	college.CountryID = 1
	national := testPlayer(2, domain.GenderMale, 5, 10)
	national.CountryID = 1
	foreign := testPlayer(3, domain.GenderMale, 5, 10)
	foreign.CountryID = 2
	collegeMate := testPlayer(4, domain.GenderMale, 5, 10)
	collegeMate.CollegeID = 9
	collegeMate.CountryID = 2

	require.Equal(t, 0.8, interpoolCoefficient(college, national, rule))
	require.Equal(t, 0.8, interpoolCoefficient(national, college, rule))
	require.Equal(t, 1.0, interpoolCoefficient(college, collegeMate, rule))
	require.Equal(t, 0.9, interpoolCoefficient(national, foreign, rule))
	require.Equal(t, 1.0, interpoolCoefficient(national, national, rule))
}

func TestMatchWeightFactors(t *testing.T) {
	rule := testRule()
	player := testPlayer(1, domain.GenderMale, 5, 10)
	opponent := testPlayer(2, domain.GenderMale, 5.5, 8)
	r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{2, 2})

	got, err := matchWeightFactors(player, opponent, &r, 1, false, rule)
	require.NoError(t, err)
	require.Equal(t, 8.0, got.OpponentReliability)
	require.Equal(t, 1.0, got.MatchFormat)
	require.Equal(t, 1.0, got.Frequency)
	// delta 0.5 inside the normal band
	require.InDelta(t, 0.85, got.Competitiveness, 1e-9)
	require.Equal(t, 1.0, got.Benchmark)
	require.InDelta(t, 6.8, got.MatchWeight, 1e-4)
}

func TestMatchWeightFactorsBenchmark(t *testing.T) {
	rule := testRule()
	player := testPlayer(1, domain.GenderMale, 5, 10)
	opponent := testPlayer(2, domain.GenderMale, 5, 10)
	r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{2, 2})

	got, err := matchWeightFactors(player, opponent, &r, 1, true, rule)
	require.NoError(t, err)
	require.Equal(t, rule.BenchmarkMatchCoefficient, got.Benchmark)
	require.InDelta(t, 1.0, got.MatchWeight, 1e-4)

	rule.EnableBenchmarkMatchCoefficient = false
	got, err = matchWeightFactors(player, opponent, &r, 1, true, rule)
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Benchmark)
	require.InDelta(t, 10.0, got.MatchWeight, 1e-4)
}

func TestMatchWeightFactorsToggledOff(t *testing.T) {
	rule := testRule()
	rule.EnableOpponentRatingReliability = false
	rule.EnableMatchFormatReliability = false
	rule.EnableMatchFrequencyReliability = false
	rule.EnableMatchCompetitivenessCoefficient = false
	rule.EnableInterpoolCoefficient = false

	player := testPlayer(1, domain.GenderMale, 5, 10)
	opponent := testPlayer(2, domain.GenderMale, 9, 2)
	r := testResult(1, 1, 2, [5]int{4, 4}, [5]int{0, 0})

	got, err := matchWeightFactors(player, opponent, &r, 5, false, rule)
	require.NoError(t, err)
	require.Equal(t, reliabilityBypass, got.OpponentReliability)
	require.Equal(t, 10.0, got.MatchWeight)
}

func TestMatchWeightFrequency(t *testing.T) {
	rule := testRule()
	player := testPlayer(1, domain.GenderMale, 5, 10)
	opponent := testPlayer(2, domain.GenderMale, 5, 10)
	r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{2, 2})

	got, err := matchWeightFactors(player, opponent, &r, 3, false, rule)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got.Frequency, 1e-9)
}
