package rating

import (
	"fmt"
	"math"
	"time"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// competitivenessCoefficient classifies a result by the rating gap between
// the two sides and returns its weight contribution. Close matches are
// taken at close to full weight unless the score was lopsided; mid-band
// gaps decay linearly; past the normal band only a competitive showing by
// the underdog keeps any weight.
func competitivenessCoefficient(playerRating, opponentRating float64, playerWon bool, r *domain.MatchResult, rule rules.Set) (float64, error) {
	delta := math.Abs(playerRating - opponentRating)
	switch {
	case delta >= rule.CloseMatchMaxRatingDelta && delta <= rule.NormalMatchMaxRatingDelta:
		return linearCoefficient(delta, rule), nil
	case delta < rule.CloseMatchMaxRatingDelta:
		if isLopsided(r, rule) {
			return rule.LopsidedMatchReliability, nil
		}
		return linearCoefficient(delta, rule), nil
	case delta > rule.NormalMatchMaxRatingDelta:
		return underdogCoefficient(playerRating, opponentRating, playerWon, r, rule), nil
	}
	return 0, fmt.Errorf("%w: result %d, delta %v", ErrUnclassifiedDelta, r.ID, delta)
}

func linearCoefficient(delta float64, rule rules.Set) float64 {
	return 1 - rule.CompetitivenessFactorMultiplier*delta
}

// isLopsided reports whether the loser took too small a share of the games
// for a close-rated match to carry full weight.
func isLopsided(r *domain.MatchResult, rule rules.Set) bool {
	total := r.WinnerGameCount() + r.LoserGameCount()
	if total == 0 {
		return false
	}
	return float64(r.LoserGameCount())/float64(total) <= rule.LopsidedGameRatio
}

// underdogCoefficient handles gaps past the normal band. An expected win
// that was not competitive contributes nothing; everything else keeps the
// residual underdog weight.
func underdogCoefficient(playerRating, opponentRating float64, playerWon bool, r *domain.MatchResult, rule rules.Set) float64 {
	winnerRating, loserRating := playerRating, opponentRating
	if !playerWon {
		winnerRating, loserRating = opponentRating, playerRating
	}
	if winnerRating > loserRating && !r.IsCompetitive() {
		return rule.UnderdogMatchReliability
	}
	return rule.CompetitiveUnderdogReliability
}

// competitiveBands maps a loss percentage to one of the three published
// match-outcome categories.
const (
	competitiveLossPct = 0.5
	routineLossPct     = 0.26
)

// competitivenessPercentages buckets the player's recent results into
// competitive, routine and decisive shares, as rounded integer
// percentages. Only results from the last year count, capped at the rule's
// result limit.
func competitivenessPercentages(results []domain.MatchResult, now time.Time, rule rules.Set) (competitive, routine, decisive float64) {
	cutoff := now.AddDate(-1, 0, 0)
	recent := make([]domain.MatchResult, 0, len(results))
	for i := range results {
		if results[i].Date.After(cutoff) {
			recent = append(recent, results[i])
		}
	}
	max := rule.NumberOfResults
	if len(recent) < max {
		max = len(recent)
	}
	if max <= 0 {
		return 0, 0, 0
	}
	var nCompetitive, nRoutine, nDecisive int
	for i := 0; i < max; i++ {
		r := &recent[i]
		lossPct := lossPercentage(r)
		switch {
		case lossPct > competitiveLossPct:
			nCompetitive++
		case lossPct >= routineLossPct:
			nRoutine++
		default:
			nDecisive++
		}
	}
	competitive = math.Round(float64(nCompetitive) / float64(max) * 100)
	routine = math.Round(float64(nRoutine) / float64(max) * 100)
	decisive = math.Round(float64(nDecisive) / float64(max) * 100)
	return competitive, routine, decisive
}

// lossPercentage relates the loser's games to the games a loss would have
// needed to be a win for the format. Single-set results scale by the
// winner's first-set score; a score off the scale yields +Inf, which always
// classifies as competitive.
func lossPercentage(r *domain.MatchResult) float64 {
	lossScore := 0
	for _, s := range r.LoserSets {
		lossScore += s
	}
	var gamesNeedToWin int
	setCount := r.SetCount()
	switch {
	case setCount == 1:
		switch r.WinnerSets[0] {
		case 10:
			gamesNeedToWin = 10
		case 9, 8:
			gamesNeedToWin = 8
		case 7, 6:
			gamesNeedToWin = 6
		case 5, 4:
			gamesNeedToWin = 4
		}
	case setCount <= 3:
		gamesNeedToWin = 12
	default:
		gamesNeedToWin = 18
	}
	return float64(lossScore) / float64(gamesNeedToWin)
}
