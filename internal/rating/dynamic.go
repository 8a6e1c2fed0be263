package rating

import (
	"fmt"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// Rating levels span 1..16.5; the scale graduation is interpolated over
// that range. Doubles uses the shorter female span for female pairings.
const (
	levelFloor        = 1.0
	levelCeiling      = 16.5
	scaleSpan         = levelCeiling - levelFloor
	femaleScaleSpan   = 12.5
	maleRatingCap     = 16.5
	femaleRatingCap   = 13.5
	newcomerThreshold = 1.0
)

// effectiveRating is the rating a player presents to others inside a
// calculation: the benchmark rating when one is set, the working rating
// otherwise. The state itself is never overwritten.
func effectiveRating(p *domain.Player) float64 {
	if p.Rating.BenchmarkRating > 0 {
		return p.Rating.BenchmarkRating
	}
	return p.Rating.Rating
}

// matchBaseline is the starting point of a dynamic rating: the mean of the
// two effective ratings, with special handling when either side is a
// newcomer (no positive rating, reliability at most 1).
func matchBaseline(r *domain.MatchResult, players map[int64]*domain.Player) (float64, error) {
	winner, ok := players[r.Winner1]
	if !ok {
		return 0, fmt.Errorf("%w: result %d, winner %d", ErrUnknownParticipant, r.ID, r.Winner1)
	}
	loser, ok := players[r.Loser1]
	if !ok {
		return 0, fmt.Errorf("%w: result %d, loser %d", ErrUnknownParticipant, r.ID, r.Loser1)
	}
	wr, lr := effectiveRating(winner), effectiveRating(loser)
	wNew := wr <= 0 && winner.Rating.Reliability <= newcomerThreshold
	lNew := lr <= 0 && loser.Rating.Reliability <= newcomerThreshold
	switch {
	case wNew && lNew:
		return levelFloor, nil
	case wNew:
		return round(lr, 1), nil
	case lNew:
		return round(wr, 1), nil
	}
	return round((wr+lr)/2, 2), nil
}

// dynamicRating is the per-result singles rating: the match baseline moved
// by the games-won adjustment, floored at 1, optionally capped per gender
// and truncated to 3 decimal places.
func dynamicRating(player, opponent *domain.Player, r *domain.MatchResult, players map[int64]*domain.Player, rule rules.Set) (float64, error) {
	baseline, err := matchBaseline(r, players)
	if err != nil {
		return 0, err
	}
	adjustment, err := adjustmentFactor(player, opponent.Gender, baseline, r, rule)
	if err != nil {
		return 0, err
	}
	d := baseline + adjustment
	if d < levelFloor {
		d = levelFloor
	}
	if rule.EnableDynamicRatingCap {
		limit := femaleRatingCap
		if player.Gender == domain.GenderMale {
			limit = maleRatingCap
		}
		if d > limit {
			d = limit
		}
	}
	return truncate(d, 3), nil
}

// scaleGraduation interpolates the adjustment scale between its low and
// high bounds across the rating range, clamped to the bounds.
func scaleGraduation(low, high, baseline, span float64) float64 {
	return clamp(low+(baseline-levelFloor)*(high-low)/span, low, high)
}

// adjustmentFactor converts the player's share of games won into a rating
// offset. Same-gender matches use that gender's scale, mixed matches the
// average of both. College losses below the configured level are dampened.
func adjustmentFactor(player *domain.Player, opponentGender domain.Gender, baseline float64, r *domain.MatchResult, rule rules.Set) (float64, error) {
	highM, lowM := rule.MaleScaleGraduationHigh, rule.MaleScaleGraduationLow
	highF, lowF := rule.FemaleScaleGraduationHigh, rule.FemaleScaleGraduationLow
	if r.IsCollegeMatch() {
		highM, lowM = rule.MaleCollegeScaleGraduationHigh, rule.MaleCollegeScaleGraduationLow
		highF, lowF = rule.FemaleCollegeScaleGraduationHigh, rule.FemaleCollegeScaleGraduationLow
	}
	pct, err := r.PercentOfGamesWon(player.ID)
	if err != nil {
		return 0, err
	}
	scaleM := scaleGraduation(lowM, highM, baseline, scaleSpan)
	scaleF := scaleGraduation(lowF, highF, baseline, scaleSpan)
	if player.Gender != opponentGender {
		scale := (scaleM + scaleF) / 2
		return pct*2*scale - scale, nil
	}
	if opponentGender == domain.GenderMale {
		adjustment := pct*2*scaleM - scaleM
		if r.IsCollegeMatch() && r.Loser1 == player.ID && baseline < rule.MaleScaleLossPercentageMaxLevel {
			adjustment *= rule.MaleCollegeScaleLossPercentage
		}
		return adjustment, nil
	}
	adjustment := pct*2*scaleF - scaleF
	if r.IsCollegeMatch() && r.Loser1 == player.ID && baseline < rule.FemaleScaleLossPercentageMaxLevel {
		adjustment *= rule.FemaleCollegeScaleLossPercentage
	}
	return adjustment, nil
}
