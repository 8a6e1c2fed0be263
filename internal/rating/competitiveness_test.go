package rating

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
)

func TestCompetitivenessCoefficient(t *testing.T) {
	rule := testRule()
	tests := []struct {
		name           string
		playerRating   float64
		opponentRating float64
		playerWon      bool
		winnerSets     [5]int
		loserSets      [5]int
		want           float64
	}{
		{
			name:           "normal band decays linearly",
			playerRating:   5,
			opponentRating: 6,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{4, 4},
			want:           0.7,
		},
		{
			name:           "close match full weight",
			playerRating:   5,
			opponentRating: 5.1,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{4, 4},
			want:           0.97,
		},
		{
			name:           "close match lopsided score",
			playerRating:   5,
			opponentRating: 5.1,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{0, 0},
			want:           rule.LopsidedMatchReliability,
		},
		{
			name:           "expected blowout past the band",
			playerRating:   9,
			opponentRating: 5,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{1, 1},
			want:           rule.UnderdogMatchReliability,
		},
		{
			name:           "competitive loss past the band",
			playerRating:   9,
			opponentRating: 5,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{4, 4},
			want:           rule.CompetitiveUnderdogReliability,
		},
		{
			name:           "underdog win past the band",
			playerRating:   5,
			opponentRating: 9,
			playerWon:      true,
			winnerSets:     [5]int{6, 6},
			loserSets:      [5]int{1, 1},
			want:           rule.CompetitiveUnderdogReliability,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResult(1, 1, 2, tt.winnerSets, tt.loserSets)
			got, err := competitivenessCoefficient(tt.playerRating, tt.opponentRating, tt.playerWon, &r, rule)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompetitivenessCoefficientNaN(t *testing.T) {
	rule := testRule()
	r := testResult(1, 1, 2, [5]int{6, 6}, [5]int{4, 4})
	_, err := competitivenessCoefficient(math.NaN(), 5, true, &r, rule)
	require.ErrorIs(t, err, ErrUnclassifiedDelta)
}

func TestCompetitivenessPercentages(t *testing.T) {
	rule := testRule()
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -1, 0)
	stale := now.AddDate(-2, 0, 0)

	decisive := testResult(1, 1, 2, [5]int{6, 6}, [5]int{0, 0})
	decisive.Date = recent
	routine := testResult(2, 1, 2, [5]int{6, 6}, [5]int{3, 3})
	routine.Date = recent
	competitive := testResult(3, 1, 2, [5]int{6, 6}, [5]int{4, 4})
	competitive.Date = recent
	old := testResult(4, 1, 2, [5]int{6, 6}, [5]int{0, 0})
	old.Date = stale

	comp, rout, dec := competitivenessPercentages(
		[]domain.MatchResult{decisive, routine, competitive, old}, now, rule)
	require.Equal(t, 33.0, comp)
	require.Equal(t, 33.0, rout)
	require.Equal(t, 33.0, dec)
}

func TestLossPercentageOneSetScale(t *testing.T) {
	tests := []struct {
		name   string
		winner [5]int
		loser  [5]int
		want   float64
	}{
		{
			name:   "one set to six",
			winner: [5]int{6},
			loser:  [5]int{4},
			want:   4.0 / 6.0,
		},
		{
			name:   "one set to ten",
			winner: [5]int{10},
			loser:  [5]int{7},
			want:   0.7,
		},
		{
			name:   "three sets",
			winner: [5]int{6, 4, 6},
			loser:  [5]int{3, 6, 2},
			want:   11.0 / 12.0,
		},
		{
			name:   "five sets",
			winner: [5]int{6, 4, 6, 6},
			loser:  [5]int{4, 6, 3, 4},
			want:   17.0 / 18.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testResult(1, 1, 2, tt.winner, tt.loser)
			require.InDelta(t, tt.want, lossPercentage(&r), 1e-9)
		})
	}
}

func TestLossPercentageOffScaleIsInfinite(t *testing.T) {
	r := testResult(1, 1, 2, [5]int{3}, [5]int{1})
	require.True(t, math.IsInf(lossPercentage(&r), 1))
}
