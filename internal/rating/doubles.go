package rating

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// DoublesEngine runs the doubles side of a rating calculation. Doubles
// ratings lean on the singles snapshot through the assignment fallback
// chain and the final singles blend.
type DoublesEngine struct {
	rule rules.Set
	log  *logrus.Entry
	now  time.Time
}

func NewDoubles(rule rules.Set, log *logrus.Entry) *DoublesEngine {
	return &DoublesEngine{rule: rule, log: log, now: time.Now()}
}

// TeamInfo is the resolved view of one side of a doubles result, built
// from the per-player assigned ratings.
type TeamInfo struct {
	Player1ID        int64
	Player2ID        int64
	Player1Gender    domain.Gender
	Player2Gender    domain.Gender
	Player1Country   int64
	Player2Country   int64
	Player1Rating    float64
	Player2Rating    float64
	RatingSpread     float64
	TeamRating       float64
	TeamReliability  float64
	HasCollegePlayer bool
}

// newTeamInfo averages the two assigned ratings into the team rating. For
// the opponent side only, a player's doubles benchmark rating overrides
// the assigned one; the override lives in this value, never in the player
// state.
func newTeamInfo(p1, p2 *domain.Player, opponent bool) TeamInfo {
	r1, r2 := p1.Rating.AssignedRating, p2.Rating.AssignedRating
	if opponent && p1.Rating.DoublesBenchmarkRating > 0 {
		r1 = p1.Rating.DoublesBenchmarkRating
	}
	if opponent && p2.Rating.DoublesBenchmarkRating > 0 {
		r2 = p2.Rating.DoublesBenchmarkRating
	}
	return TeamInfo{
		Player1ID:        p1.ID,
		Player2ID:        p2.ID,
		Player1Gender:    p1.Gender,
		Player2Gender:    p2.Gender,
		Player1Country:   p1.CountryID,
		Player2Country:   p2.CountryID,
		Player1Rating:    r1,
		Player2Rating:    r2,
		RatingSpread:     math.Abs(r1 - r2),
		TeamRating:       truncate((r1+r2)/2, 2),
		TeamReliability:  (p1.Rating.AssignedReliability + p2.Rating.AssignedReliability) / 2,
		HasCollegePlayer: p1.CollegeID > 0 || p2.CollegeID > 0,
	}
}

// Iterate runs one full doubles pass. Values are staged per player and
// published together at the end, followed by the benchmark trail update.
func (e *DoublesEngine) Iterate(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) error {
	for _, player := range players {
		all, ok := resultsByPlayer[player.ID]
		if !ok {
			continue
		}
		results := eligibleDoublesResults(all, e.rule.NumberOfResults)
		if len(results) == 0 {
			player.Rating.CalculatedReliability = 0
			continue
		}
		pi, err := e.calculateDoublesRating(player, results, players)
		if err != nil {
			return err
		}
		rating, reliability := pi.Rating, pi.Reliability
		if math.IsNaN(rating) {
			rating = 0
		}
		if math.IsNaN(reliability) {
			reliability = 0
		}
		player.Rating.CalculatedRating = rating
		player.Rating.CalculatedReliability = reliability
	}
	for _, player := range players {
		st := player.Rating
		st.DoublesRating = st.CalculatedRating
		st.DoublesReliability = st.CalculatedReliability
		e.trailBenchmark(st)
	}
	return nil
}

// trailBenchmark keeps the doubles benchmark within the trail span of the
// published rating once the rating has become trustworthy. The benchmark
// initializes on first crossing of the threshold and only creeps after
// that, so a benchmarked rating cannot swing freely between runs.
func (e *DoublesEngine) trailBenchmark(st *domain.RatingState) {
	if st.DoublesReliability <= e.rule.ProvisionalDoublesReliabilityThreshold || st.DoublesRating <= 0 {
		return
	}
	if st.DoublesBenchmarkRating == 0 {
		st.DoublesBenchmarkRating = st.DoublesRating
		return
	}
	span := e.rule.BenchmarkTrailSpan
	switch {
	case st.DoublesBenchmarkRating < st.DoublesRating:
		st.DoublesBenchmarkRating = math.Max(st.DoublesBenchmarkRating, st.DoublesRating-span)
	case st.DoublesBenchmarkRating > st.DoublesRating:
		st.DoublesBenchmarkRating = math.Min(st.DoublesBenchmarkRating, st.DoublesRating+span)
	}
}

// calculateDoublesRating folds the eligible doubles results into the
// weighted average, then blends in the player's singles rating in
// proportion to the relative reliabilities.
func (e *DoublesEngine) calculateDoublesRating(player *domain.Player, results []domain.MatchResult, players map[int64]*domain.Player) (info, error) {
	var sumRatingWeight, sumWeight, sumReliability float64
	counted := 0
	active := make([]int64, 0, len(results))
	for i := range results {
		r := &results[i]
		w1, w2, l1, l2, err := participants(r, players)
		if err != nil {
			return info{}, err
		}
		if !e.assignAll(r, w1, w2, l1, l2) {
			continue
		}
		playerTeam, opponentTeam, err := teams(player.ID, r, w1, w2, l1, l2)
		if err != nil {
			return info{}, err
		}
		if opponentTeam.TeamReliability <= 0 {
			continue
		}
		dynamic, err := e.dynamicTeamPlayerRating(player.ID, playerTeam, opponentTeam, r)
		if err != nil {
			return info{}, err
		}
		dynamic = truncate(dynamic, 3)
		partnerResults := partnerResultCount(playerTeam, results)
		factors, err := e.matchWeight(playerTeam, opponentTeam, r, partnerResults)
		if err != nil {
			return info{}, err
		}
		if factors.MatchWeight >= e.rule.EligibleResultWeightThreshold {
			active = append(active, r.ID)
		}
		sumRatingWeight += dynamic * factors.MatchWeight
		sumWeight += factors.MatchWeight
		sumReliability += factors.MatchWeight / factors.Interpool
		counted++
	}
	activeJSON, err := json.Marshal(active)
	if err != nil {
		return info{}, err
	}
	player.Rating.ActiveDoublesResults = string(activeJSON)
	if counted <= 0 {
		return info{}, nil
	}
	doublesRating := 1.0
	if sumWeight > 0 {
		doublesRating = sumRatingWeight / sumWeight
	}
	return info{
		Rating:      e.blendWithSingles(player, doublesRating, counted),
		Reliability: e.playerReliability(sumReliability),
	}, nil
}

// blendWithSingles mixes the doubles weighted average with the player's
// published singles rating. Each side is weighted by its reliability
// share; the singles side only participates above the reliability
// threshold and when a published singles rating exists at all.
func (e *DoublesEngine) blendWithSingles(player *domain.Player, doublesRating float64, counted int) float64 {
	st := player.Rating
	n := float64(counted)
	doublesShare := st.AssignedReliability / e.rule.MaxReliability
	singlesShare := st.Reliability / e.rule.MaxReliability
	singlesWeight := 0.0
	if st.Reliability >= e.rule.SinglesWeightReliabilityThreshold {
		singlesWeight = e.rule.SinglesWeightOnDoubles
	}
	if st.FinalRating > 0 && st.Reliability > 0 {
		return (n*(doublesRating*doublesShare) + singlesWeight*(st.FinalRating*singlesShare)) /
			(n*doublesShare + singlesWeight*singlesShare)
	}
	return (n * (doublesRating * doublesShare)) / (n * doublesShare)
}

// playerReliability is the doubles variant: a fixed base of 1 plus the
// interpool-corrected weight sum over 6, capped at the rule maximum.
func (e *DoublesEngine) playerReliability(sumReliability float64) float64 {
	r := 1 + sumReliability/6
	if r > e.rule.MaxReliability {
		r = e.rule.MaxReliability
	}
	return r
}

func participants(r *domain.MatchResult, players map[int64]*domain.Player) (w1, w2, l1, l2 *domain.Player, err error) {
	for _, id := range [4]int64{r.Winner1, r.Winner2, r.Loser1, r.Loser2} {
		if _, ok := players[id]; !ok {
			return nil, nil, nil, nil, fmt.Errorf("%w: result %d, player %d", ErrUnknownParticipant, r.ID, id)
		}
	}
	return players[r.Winner1], players[r.Winner2], players[r.Loser1], players[r.Loser2], nil
}

// assignAll resolves an assigned rating for all four participants of one
// result. If any assignment fails the result is unusable.
func (e *DoublesEngine) assignAll(r *domain.MatchResult, w1, w2, l1, l2 *domain.Player) bool {
	competitive := r.IsCompetitiveLabel()
	ok := e.assignRating(w1, w2, l1, l2, competitive)
	ok = e.assignRating(w2, w1, l1, l2, competitive) && ok
	ok = e.assignRating(l1, l2, w1, w2, competitive) && ok
	ok = e.assignRating(l2, l1, w1, w2, competitive) && ok
	return ok
}

// assignRating picks the rating a player brings into a doubles result,
// falling back from the player's own ratings through the partner's to the
// opponents'. Each source must clear its reliability threshold. The
// outcome is staged on the player state for the team build that follows.
func (e *DoublesEngine) assignRating(p, partner, op1, op2 *domain.Player, competitive bool) bool {
	dt := e.rule.ProvisionalDoublesReliabilityThreshold
	st := e.rule.ProvisionalSinglesReliabilityThreshold
	set := func(rating, reliability float64) bool {
		p.Rating.AssignedRating = rating
		p.Rating.AssignedReliability = reliability
		p.Rating.AssignedOK = true
		return true
	}
	if hasDoubles(p, dt) {
		return set(p.Rating.DoublesRating, p.Rating.DoublesReliability)
	}
	if hasSingles(p, st) {
		return set(p.Rating.FinalRating, p.Rating.Reliability)
	}
	if hasDoubles(partner, dt) {
		return set(partner.Rating.DoublesRating, partner.Rating.DoublesReliability)
	}
	if hasSingles(partner, st) {
		return set(partner.Rating.FinalRating, partner.Rating.Reliability)
	}
	if hasDoubles(op1, dt) && hasDoubles(op2, dt) {
		return set(
			(op1.Rating.DoublesRating+op2.Rating.DoublesRating)/2,
			(op1.Rating.DoublesReliability+op2.Rating.DoublesReliability)/2,
		)
	}
	if hasDoubles(op1, dt) {
		return set(op1.Rating.DoublesRating, op1.Rating.DoublesReliability)
	}
	if hasDoubles(op2, dt) {
		return set(op2.Rating.DoublesRating, op2.Rating.DoublesReliability)
	}
	if !competitive && e.rule.EnableCompetitivenessFilter {
		p.Rating.AssignedOK = false
		return false
	}
	if hasSingles(op1, st) && hasSingles(op2, st) {
		return set(
			(op1.Rating.FinalRating+op2.Rating.FinalRating)/2,
			(op1.Rating.Reliability+op2.Rating.Reliability)/2,
		)
	}
	if hasSingles(op1, st) {
		return set(op1.Rating.FinalRating, op1.Rating.Reliability)
	}
	if hasSingles(op2, st) {
		return set(op2.Rating.FinalRating, op2.Rating.Reliability)
	}
	p.Rating.AssignedOK = false
	return false
}

func hasDoubles(p *domain.Player, threshold float64) bool {
	return p.Rating.DoublesRating > 0 && p.Rating.DoublesReliability >= threshold
}

func hasSingles(p *domain.Player, threshold float64) bool {
	return p.Rating.FinalRating > 0 && p.Rating.Reliability >= threshold
}

// teams places the player on one side of the result and builds both team
// views. Benchmark overrides apply to the opponent team only.
func teams(playerID int64, r *domain.MatchResult, w1, w2, l1, l2 *domain.Player) (playerTeam, opponentTeam TeamInfo, err error) {
	switch playerID {
	case w1.ID, w2.ID:
		return newTeamInfo(w1, w2, false), newTeamInfo(l1, l2, true), nil
	case l1.ID, l2.ID:
		return newTeamInfo(l1, l2, false), newTeamInfo(w1, w2, true), nil
	}
	return TeamInfo{}, TeamInfo{}, fmt.Errorf("%w: result %d, player %d", ErrTeamMapping, r.ID, playerID)
}

type matchGender int

const (
	matchGenderMale matchGender = iota
	matchGenderFemale
	matchGenderCoed
)

func matchGenderType(playerTeam, opponentTeam TeamInfo, r *domain.MatchResult) (matchGender, error) {
	genders := [4]domain.Gender{
		playerTeam.Player1Gender, playerTeam.Player2Gender,
		opponentTeam.Player1Gender, opponentTeam.Player2Gender,
	}
	hasMale, hasFemale := false, false
	for _, g := range genders {
		switch g {
		case domain.GenderMale:
			hasMale = true
		case domain.GenderFemale:
			hasFemale = true
		}
	}
	switch {
	case hasMale && hasFemale:
		return matchGenderCoed, nil
	case hasMale:
		return matchGenderMale, nil
	case hasFemale:
		return matchGenderFemale, nil
	}
	return 0, fmt.Errorf("%w: result %d", ErrGenderType, r.ID)
}

// dynamicTeamPlayerRating derives the player's per-result rating from the
// team dynamic: the team baseline plus the games-won adjustment, shifted
// onto the player by replacing the team average with the player's own
// assigned rating. The player value is capped by a substitute dynamic
// computed as if the player had played alone against the opponent team.
func (e *DoublesEngine) dynamicTeamPlayerRating(playerID int64, playerTeam, opponentTeam TeamInfo, r *domain.MatchResult) (float64, error) {
	genderType, err := matchGenderType(playerTeam, opponentTeam, r)
	if err != nil {
		return 0, err
	}
	spreadDelta := playerTeam.RatingSpread - opponentTeam.RatingSpread
	baseline := teamBaseline(playerTeam.TeamRating, opponentTeam.TeamRating)
	adjustment, err := e.teamAdjustmentFactor(playerID, r, spreadDelta, baseline, genderType)
	if err != nil {
		return 0, err
	}
	teamDynamic := clamp(baseline+adjustment, levelFloor, levelCeiling)
	var ownRating float64
	var ownGender domain.Gender
	switch playerID {
	case playerTeam.Player1ID:
		ownRating, ownGender = playerTeam.Player1Rating, playerTeam.Player1Gender
	case playerTeam.Player2ID:
		ownRating, ownGender = playerTeam.Player2Rating, playerTeam.Player2Gender
	default:
		return 0, fmt.Errorf("%w: result %d, player %d", ErrTeamMapping, r.ID, playerID)
	}
	substituteCap := clamp(teamBaseline(ownRating, opponentTeam.TeamRating)+adjustment, levelFloor, levelCeiling)
	dynamic := clamp(teamDynamic-playerTeam.TeamRating+ownRating, levelFloor, substituteCap)
	if e.rule.EnableDynamicRatingCap {
		limit := femaleRatingCap
		if ownGender == domain.GenderMale {
			limit = maleRatingCap
		}
		if dynamic > limit {
			dynamic = limit
		}
	}
	return dynamic, nil
}

func teamBaseline(a, b float64) float64 {
	return truncate((a+b)/2, 2)
}

// teamAdjustmentFactor converts the player's side's share of games into a
// rating offset, with a correction for the difference in rating spread
// between the teams. Coed matches average the gender scales.
func (e *DoublesEngine) teamAdjustmentFactor(playerID int64, r *domain.MatchResult, spreadDelta, baseline float64, genderType matchGender) (float64, error) {
	pct, err := r.PercentOfGamesWon(playerID)
	if err != nil {
		return 0, err
	}
	scaleM := scaleGraduation(e.rule.MaleScaleGraduationLow, e.rule.MaleScaleGraduationHigh, baseline, scaleSpan)
	scaleF := scaleGraduation(e.rule.FemaleScaleGraduationLow, e.rule.FemaleScaleGraduationHigh, baseline, femaleScaleSpan)
	var scale float64
	switch genderType {
	case matchGenderMale:
		scale = scaleM
	case matchGenderFemale:
		scale = scaleF
	default:
		scale = (scaleM + scaleF) / 2
	}
	return e.rule.PartnerSpreadAdjustmentFactor*spreadDelta + pct*2*scale - scale, nil
}

// partnerResultCount counts the eligible results the pairing played
// together, never less than one.
func partnerResultCount(team TeamInfo, results []domain.MatchResult) int {
	n := 0
	for i := range results {
		r := &results[i]
		sameWinners := (r.Winner1 == team.Player1ID && r.Winner2 == team.Player2ID) ||
			(r.Winner1 == team.Player2ID && r.Winner2 == team.Player1ID)
		sameLosers := (r.Loser1 == team.Player1ID && r.Loser2 == team.Player2ID) ||
			(r.Loser1 == team.Player2ID && r.Loser2 == team.Player1ID)
		if sameWinners || sameLosers {
			n++
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// partnerFrequency dampens the weight of results against the same
// pairing: the floor plus the remaining share split across the pairing's
// results.
func (e *DoublesEngine) partnerFrequency(results float64) float64 {
	floor := e.rule.MinPartnerFrequencyFactor
	return floor + (1-floor)/results
}

// matchWeight composes the weight of one doubles result. The opponent
// side contributes its team reliability; the partner frequency replaces
// the singles opponent-frequency factor.
func (e *DoublesEngine) matchWeight(playerTeam, opponentTeam TeamInfo, r *domain.MatchResult, partnerResults int) (WeightFactors, error) {
	f := WeightFactors{
		OpponentReliability: opponentTeam.TeamReliability,
		MatchFormat:         reliabilityBypass,
		Frequency:           1,
		Competitiveness:     1,
		Benchmark:           1,
		Interpool:           1,
	}
	if e.rule.EnableMatchFormatReliability {
		v, err := formatReliability(r, e.rule)
		if err != nil {
			return WeightFactors{}, err
		}
		f.MatchFormat = v
	}
	if e.rule.EnablePartnerFrequencyReliability {
		f.Frequency = e.partnerFrequency(float64(partnerResults))
	}
	if e.rule.EnableMatchCompetitivenessCoefficient {
		playerWon := r.Winner1 == playerTeam.Player1ID || r.Winner1 == playerTeam.Player2ID
		v, err := competitivenessCoefficient(playerTeam.TeamRating, opponentTeam.TeamRating, playerWon, r, e.rule)
		if err != nil {
			return WeightFactors{}, err
		}
		f.Competitiveness = v
	}
	if e.rule.EnableInterpoolCoefficient {
		f.Interpool = teamInterpool(playerTeam, opponentTeam, e.rule)
	}
	weight := f.OpponentReliability * f.MatchFormat * f.Frequency * f.Competitiveness * f.Interpool
	f.MatchWeight = truncate(weight, 5)
	return f, nil
}

// teamInterpool discounts results that cross pool boundaries: a college
// team against a non-college one takes the college coefficient; otherwise
// any mismatch in (known) countries takes the country coefficient.
func teamInterpool(playerTeam, opponentTeam TeamInfo, rule rules.Set) float64 {
	if playerTeam.HasCollegePlayer != opponentTeam.HasCollegePlayer {
		return rule.InterpoolCoefficientCollege
	}
	countries := [4]int64{
		playerTeam.Player1Country, playerTeam.Player2Country,
		opponentTeam.Player1Country, opponentTeam.Player2Country,
	}
	for _, c := range countries {
		if c <= 0 {
			return 1
		}
	}
	for _, c := range countries[1:] {
		if c != countries[0] {
			return rule.InterpoolCoefficientCountry
		}
	}
	return 1
}

// Competitiveness fills the doubles competitive-match percentage from the
// eligible doubles results of the final iteration.
func (e *DoublesEngine) Competitiveness(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) {
	for _, player := range players {
		results := eligibleDoublesResults(resultsByPlayer[player.ID], e.rule.NumberOfResults)
		player.Rating.CompetitiveMatchPctDoubles = e.competitivePercentage(results)
	}
}

func (e *DoublesEngine) competitivePercentage(results []domain.MatchResult) float64 {
	cutoff := e.now.AddDate(-1, 0, 0)
	total, competitive := 0, 0
	for i := range results {
		r := &results[i]
		if !r.Date.After(cutoff) {
			continue
		}
		total++
		// an off-scale score has no loss percentage and never counts as
		// competitive here
		if pct := lossPercentage(r); !math.IsInf(pct, 1) && pct > competitiveLossPct {
			competitive++
		}
	}
	if total <= 0 {
		return 0
	}
	return math.Round(float64(competitive) / float64(total) * 100)
}

// Normalize maps the doubles ratings onto the published scale. The
// college-population fraction comes from the whole eligible list, without
// the selection walk singles uses.
func (e *DoublesEngine) Normalize(players map[int64]*domain.Player, resultsByPlayer map[int64][]domain.MatchResult) {
	for _, player := range players {
		results := eligibleDoublesResults(resultsByPlayer[player.ID], e.rule.NumberOfResults)
		pct := collegeFractionAll(results, e.rule)
		st := player.Rating
		correction := curveCorrection(e.rule.Curve, player.Gender, st.DoublesRating, pct)
		final := smoothRating(player.Gender, st.DoublesReliability, st.DoublesRating+correction)
		st.FinalDoublesRating = truncate(final, 2)
	}
}
