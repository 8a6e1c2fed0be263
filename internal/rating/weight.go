package rating

import (
	"fmt"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// reliabilityBypass stands in for a factor whose toggle is off, matching
// the scale of a fully reliable opponent.
const reliabilityBypass = 10.0

// matchWeightFactors composes the weight of one singles result: opponent
// reliability times format, frequency, competitiveness and interpool
// coefficients, scaled down against benchmark opponents. Each factor
// collapses to its neutral value when its toggle is off.
func matchWeightFactors(player, opponent *domain.Player, r *domain.MatchResult, frequency float64, againstBenchmark bool, rule rules.Set) (WeightFactors, error) {
	f := WeightFactors{
		OpponentReliability: reliabilityBypass,
		MatchFormat:         1,
		Frequency:           1,
		Competitiveness:     1,
		Benchmark:           1,
		Interpool:           1,
	}
	if rule.EnableOpponentRatingReliability {
		f.OpponentReliability = opponent.Rating.Reliability
	}
	if rule.EnableMatchFormatReliability {
		v, err := formatReliability(r, rule)
		if err != nil {
			return WeightFactors{}, err
		}
		f.MatchFormat = v
	}
	if rule.EnableMatchFrequencyReliability {
		f.Frequency = 2 / (frequency + 1)
	}
	if rule.EnableMatchCompetitivenessCoefficient {
		v, err := competitivenessCoefficient(player.Rating.Rating, effectiveRating(opponent), r.Winner1 == player.ID, r, rule)
		if err != nil {
			return WeightFactors{}, err
		}
		f.Competitiveness = v
	}
	if rule.EnableInterpoolCoefficient {
		f.Interpool = interpoolCoefficient(player, opponent, rule)
	}
	weight := f.OpponentReliability * f.MatchFormat * f.Frequency * f.Competitiveness * f.Interpool
	if againstBenchmark {
		if rule.EnableBenchmarkMatchCoefficient {
			f.Benchmark = rule.BenchmarkMatchCoefficient
		}
		weight *= f.Benchmark
	}
	f.MatchWeight = truncate(weight, 5)
	return f, nil
}

// formatReliability weights a result by how much tennis was actually
// played. Unfinished matches are scaled by completed sets instead.
func formatReliability(r *domain.MatchResult, rule rules.Set) (float64, error) {
	if r.DNF {
		switch r.CompletedSets {
		case 0:
			return 0, nil
		case 1:
			return 0.5, nil
		case 2:
			return 0.8, nil
		case 3:
			return 0.9, nil
		case 4:
			return 0.95, nil
		}
		return 0, fmt.Errorf("%w: result %d reports %d completed sets", ErrCompletedSetsOutOfRange, r.ID, r.CompletedSets)
	}
	switch r.Format() {
	case domain.BestOfFiveSets:
		return rule.BestOfFiveSetReliability, nil
	case domain.BestOfThreeSets:
		return rule.BestOfThreeSetReliability, nil
	case domain.EightGameProSet:
		return rule.EightGameProSetReliability, nil
	case domain.MiniSet:
		return rule.MiniSetReliability, nil
	case domain.OneSet:
		return rule.OneSetReliability, nil
	}
	return 0, fmt.Errorf("%w: result %d", ErrUnknownMatchFormat, r.ID)
}

// interpoolCoefficient discounts results that cross population boundaries.
// College-to-non-college crossings take precedence over country crossings;
// two college players are never discounted.
func interpoolCoefficient(player, opponent *domain.Player, rule rules.Set) float64 {
	playerCollege, opponentCollege := player.IsCollege(), opponent.IsCollege()
	if playerCollege && opponentCollege {
		return 1
	}
	if playerCollege != opponentCollege {
		return rule.InterpoolCoefficientCollege
	}
	if player.CountryID > 0 && opponent.CountryID > 0 && player.CountryID != opponent.CountryID {
		return rule.InterpoolCoefficientCountry
	}
	return 1
}
