package rating

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

func sortedByDateDesc(results []domain.MatchResult) []domain.MatchResult {
	ordered := make([]domain.MatchResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})
	return ordered
}

// eligibleResults walks a player's results newest-first and picks the set
// the rating calculation uses. A result is picked while fewer than the cap
// have been accepted, or when it ties the previously accepted result's
// date exactly, and only counts when the opponent has positive reliability
// and the score is valid. Every considered matchup whose rating gap
// exceeds the rule delta grows the cap by one.
func eligibleResults(player *domain.Player, players map[int64]*domain.Player, all []domain.MatchResult, rule rules.Set) ([]domain.MatchResult, error) {
	if len(all) == 0 {
		return nil, nil
	}
	ordered := sortedByDateDesc(all)
	picked := make([]domain.MatchResult, 0, rule.NumberOfResults)
	var prevDate time.Time
	max := rule.NumberOfResults
	for _, r := range ordered {
		if !r.Date.After(rule.ResultThreshold) {
			continue
		}
		if len(picked) < max || r.Date.Equal(prevDate) {
			opponent, ok := players[r.Opponent(player.ID)]
			if !ok {
				return nil, fmt.Errorf("%w: result %d, opponent %d", ErrUnknownParticipant, r.ID, r.Opponent(player.ID))
			}
			if opponent.Rating.Reliability > 0 && r.ScoreIsValid() {
				picked = append(picked, r)
				prevDate = r.Date
			}
			if math.Abs(player.Rating.Rating-opponent.Rating.Rating) > rule.MaxRatingDelta {
				max++
			}
		}
	}
	return picked, nil
}

// collegeFraction runs the same selection walk and returns the fraction of
// considered results imported from a college-population source.
func collegeFraction(all []domain.MatchResult, rule rules.Set) float64 {
	if len(all) == 0 {
		return 0
	}
	ordered := sortedByDateDesc(all)
	total, college := 0, 0
	var prevDate time.Time
	for _, r := range ordered {
		if !r.Date.After(rule.ResultThreshold) {
			continue
		}
		if total < rule.NumberOfResults || r.Date.Equal(prevDate) {
			total++
			prevDate = r.Date
			if isCollegePopulation(&r, rule) {
				college++
			}
		}
	}
	if total <= 0 {
		return 0
	}
	return float64(college) / float64(total)
}

// collegeFractionAll is the doubles variant: the fraction over the whole
// eligible list, no cap walk.
func collegeFractionAll(results []domain.MatchResult, rule rules.Set) float64 {
	if len(results) == 0 {
		return 0
	}
	college := 0
	for i := range results {
		if isCollegePopulation(&results[i], rule) {
			college++
		}
	}
	return float64(college) / float64(len(results))
}

// isCollegePopulation reports whether a result came from a college-pool
// import. Results without an import type never count, whatever their
// sub-type says.
func isCollegePopulation(r *domain.MatchResult, rule rules.Set) bool {
	if r.DataImportType == 0 {
		return false
	}
	for _, id := range rule.CollegeImportTypes {
		if r.DataImportType == id {
			return true
		}
	}
	for _, sub := range rule.CollegeImportSubTypes {
		if r.DataImportSubType == sub {
			return true
		}
	}
	return false
}

// eligibleDoublesResults picks the newest valid-score results up to the
// cap, then pulls in any further valid results played on the same day as
// the last one picked, so same-day matches are never split.
func eligibleDoublesResults(all []domain.MatchResult, maxCount int) []domain.MatchResult {
	if len(all) == 0 {
		return nil
	}
	ordered := sortedByDateDesc(all)
	picked := make([]domain.MatchResult, 0, maxCount)
	for _, r := range ordered {
		if !r.ScoreIsValid() {
			continue
		}
		picked = append(picked, r)
		if len(picked) == maxCount {
			break
		}
	}
	if len(ordered) > maxCount && len(picked) > 0 {
		last := picked[len(picked)-1].Date
		for _, r := range ordered[maxCount:] {
			if sameDay(r.Date, last) && r.ScoreIsValid() {
				picked = append(picked, r)
			}
		}
	}
	return picked
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// opponentFrequency counts how many of the eligible results were played
// against each opponent.
func opponentFrequency(playerID int64, results []domain.MatchResult) map[int64]int {
	counts := make(map[int64]int, len(results))
	for i := range results {
		counts[results[i].Opponent(playerID)]++
	}
	return counts
}
