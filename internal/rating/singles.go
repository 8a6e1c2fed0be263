package rating

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// SinglesEngine runs the singles side of a rating calculation. It is pure
// over the loaded snapshot; persistence happens elsewhere.
type SinglesEngine struct {
	rule rules.Set
	log  *logrus.Entry

	// now anchors the rolling sub-rating windows; tests pin it.
	now time.Time
}

func NewSingles(rule rules.Set, log *logrus.Entry) *SinglesEngine {
	return &SinglesEngine{rule: rule, log: log, now: time.Now()}
}

// info is the staged outcome of one player's calculation within an
// iteration.
type info struct {
	Rating        float64
	Reliability   float64
	SubRatings    *domain.SubRatings
	ActiveResults []int64
}

// Iterate runs one full pass over the player pool. Every player is
// evaluated against the ratings published by the previous iteration; the
// new values are staged and published together at the end, so evaluation
// order cannot leak into the outcome.
func (e *SinglesEngine) Iterate(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) error {
	for _, player := range players {
		results, err := eligibleResults(player, players, resultsByPlayer[player.ID], e.rule)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			player.Rating.CalculatedRating = player.Rating.Rating
			player.Rating.CalculatedReliability = 0
			player.Rating.CalculatedSubRatings = nil
			continue
		}
		pi, err := e.calculatePlayerRating(player, results, players)
		if err != nil {
			return err
		}
		active, err := json.Marshal(pi.ActiveResults)
		if err != nil {
			return err
		}
		player.Rating.CalculatedRating = pi.Rating
		player.Rating.CalculatedReliability = pi.Reliability
		player.Rating.CalculatedSubRatings = pi.SubRatings
		player.Rating.ActiveSinglesResults = string(active)
	}
	for _, player := range players {
		st := player.Rating
		st.Rating = st.CalculatedRating
		st.ActualRating = truncate(st.CalculatedRating, 2)
		st.Reliability = st.CalculatedReliability
		st.SubRatings = st.CalculatedSubRatings
	}
	return nil
}

// calculatePlayerRating folds the eligible results into the weighted
// average rating, the reliability and, for elite players, the sub-ratings.
func (e *SinglesEngine) calculatePlayerRating(player *domain.Player, results []domain.MatchResult, players map[int64]*domain.Player) (info, error) {
	frequency := opponentFrequency(player.ID, results)
	samples := make([]Sample, 0, len(results))
	active := make([]int64, 0, len(results))
	for i := range results {
		s, err := e.resultSample(player, &results[i], players, frequency)
		if err != nil {
			return info{}, err
		}
		samples = append(samples, s)
		if s.Weight >= e.rule.EligibleResultWeightThreshold {
			active = append(active, s.ResultID)
		}
	}
	var sumRatingWeight, sumWeight, sumReliability float64
	for _, s := range samples {
		sumRatingWeight += s.Rating * s.Weight
		sumWeight += s.Weight
		sumReliability += s.Weight / s.Factors.Interpool
	}
	rating := 0.0
	if sumWeight != 0 {
		rating = sumRatingWeight / sumWeight
	}
	if rating < levelFloor {
		rating = levelFloor
	}
	pi := info{
		Rating:        truncate(rating, 2),
		Reliability:   e.playerReliability(sumReliability),
		ActiveResults: active,
	}
	if player.IsElite() {
		pi.SubRatings = e.subRatings(samples, player.Rating.ID)
	}
	return pi, nil
}

// resultSample computes the dynamic rating and weight of one result from
// the player's side.
func (e *SinglesEngine) resultSample(player *domain.Player, r *domain.MatchResult, players map[int64]*domain.Player, frequency map[int64]int) (Sample, error) {
	opponent, ok := players[r.Opponent(player.ID)]
	if !ok {
		return Sample{}, ErrUnknownParticipant
	}
	rating, err := dynamicRating(player, opponent, r, players, e.rule)
	if err != nil {
		return Sample{}, err
	}
	againstBenchmark := opponent.Rating.IsBenchmark
	factors, err := matchWeightFactors(player, opponent, r, float64(frequency[opponent.ID]), againstBenchmark, e.rule)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		ResultID:         r.ID,
		Rating:           rating,
		Weight:           factors.MatchWeight,
		Factors:          factors,
		Surface:          r.Surface,
		Date:             r.Date,
		MastersOrSlam:    r.IsMastersOrGrandslam,
		AgainstBenchmark: againstBenchmark,
	}, nil
}

// playerReliability grows with the interpool-corrected weight sum and is
// capped at the rule maximum.
func (e *SinglesEngine) playerReliability(sumReliability float64) float64 {
	r := (e.rule.ReliabilityWeight + sumReliability) / e.rule.ReliabilityWeight
	if r > e.rule.MaxReliability {
		r = e.rule.MaxReliability
	}
	return r
}

// subRatings recomputes the weighted average over slices of the sample
// set: per surface, per rolling window, and over masters and grand slam
// results.
func (e *SinglesEngine) subRatings(samples []Sample, ratingID int64) *domain.SubRatings {
	sub := &domain.SubRatings{PlayerRatingID: ratingID, ResultCount: len(samples)}
	sub.HardCourt, sub.HardCount = sliceRating(samples, func(s Sample) bool { return s.Surface == domain.SurfaceHard })
	sub.ClayCourt, sub.ClayCount = sliceRating(samples, func(s Sample) bool { return s.Surface == domain.SurfaceClay })
	sub.GrassCourt, sub.GrassCount = sliceRating(samples, func(s Sample) bool { return s.Surface == domain.SurfaceGrass })
	sub.OneMonth, sub.OneCount = sliceRating(samples, since(e.now.AddDate(0, -1, 0)))
	sub.ThreeMonth, sub.ThreeCount = sliceRating(samples, since(e.now.AddDate(0, -3, 0)))
	sub.SixWeek, sub.SixCount = sliceRating(samples, since(e.now.AddDate(0, 0, -42)))
	sub.EightWeek, sub.EightCount = sliceRating(samples, since(e.now.AddDate(0, 0, -56)))
	sub.GrandSlamMasters, sub.GrandSlamCount = sliceRating(samples, func(s Sample) bool { return s.MastersOrSlam })
	return sub
}

func since(cutoff time.Time) func(Sample) bool {
	return func(s Sample) bool { return s.Date.After(cutoff) }
}

// sliceRating is the weighted average over the samples the predicate
// admits. A slice with no weight has no rating, but its count still
// reports how many results matched.
func sliceRating(samples []Sample, include func(Sample) bool) (*float64, int) {
	var sumRatingWeight, sumWeight float64
	count := 0
	for _, s := range samples {
		if !include(s) {
			continue
		}
		count++
		sumRatingWeight += s.Rating * s.Weight
		sumWeight += s.Weight
	}
	if sumWeight <= 0 {
		return nil, count
	}
	v := sumRatingWeight / sumWeight
	return &v, count
}

// Competitiveness fills the per-player match-outcome percentages from the
// eligible results of the final iteration.
func (e *SinglesEngine) Competitiveness(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) error {
	for _, player := range players {
		results, err := eligibleResults(player, players, resultsByPlayer[player.ID], e.rule)
		if err != nil {
			return err
		}
		competitive, routine, decisive := competitivenessPercentages(results, e.now, e.rule)
		player.Rating.CompetitiveMatchPct = competitive
		player.Rating.RoutineMatchPct = routine
		player.Rating.DecisiveMatchPct = decisive
	}
	return nil
}

// Normalize maps the computed ratings onto the published scale: the curve
// correction blended by the player's college-population exposure, smoothing
// near the top of the scale for unreliable ratings, and the same correction
// applied to every sub-rating.
func (e *SinglesEngine) Normalize(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) {
	for _, player := range players {
		pct := collegeFraction(resultsByPlayer[player.ID], e.rule)
		st := player.Rating
		correction := curveCorrection(e.rule.Curve, player.Gender, st.ActualRating, pct)
		final := smoothRating(player.Gender, st.Reliability, st.ActualRating+correction)
		st.FinalRating = truncate(final, 2)
		if st.SubRatings != nil {
			applyCorrection(st.SubRatings, player.Gender, st.Reliability, correction)
		}
	}
}
