package sqlite

import (
	"github.com/courtrank/ratingengine/gen/model"
	"github.com/courtrank/ratingengine/internal/domain"
)

func convertResultToDomain(r model.Results) domain.MatchResult {
	converted := domain.MatchResult{
		ID:                   r.ID,
		Winner1:              r.Winner1ID,
		Loser1:               r.Loser1ID,
		TeamType:             r.TeamType,
		Date:                 r.ResultDate,
		Surface:              domain.Surface(r.Surface),
		IsMastersOrGrandslam: r.MastersOrGrandslam,
		DataImportType:       r.DataImportType,
		DataImportSubType:    r.DataImportSubType,
		Competitiveness:      r.Competitiveness,
		DNF:                  r.Dnf,
		CompletedSets:        int(r.CompletedSets),
		WinnerSets: [5]int{
			int(r.WinnerSet1), int(r.WinnerSet2), int(r.WinnerSet3), int(r.WinnerSet4), int(r.WinnerSet5),
		},
		LoserSets: [5]int{
			int(r.LoserSet1), int(r.LoserSet2), int(r.LoserSet3), int(r.LoserSet4), int(r.LoserSet5),
		},
	}
	if r.Winner2ID != nil {
		converted.Winner2 = *r.Winner2ID
	}
	if r.Loser2ID != nil {
		converted.Loser2 = *r.Loser2ID
	}
	return converted
}

func convertPlayerToDomain(p model.Players, rankings []model.ThirdPartyRankings, rating model.PlayerRatings) *domain.Player {
	converted := &domain.Player{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Gender:      domain.Gender(p.Gender),
		CountryID:   p.CountryID,
		CollegeID:   p.CollegeID,
		Rating:      convertRatingToDomain(rating),
	}
	for _, r := range rankings {
		converted.Rankings = append(converted.Rankings, domain.ThirdPartyRanking{
			Source: r.Source,
			Type:   r.RankingType,
			Rank:   int(r.Rank),
		})
	}
	return converted
}

func convertRatingToDomain(r model.PlayerRatings) *domain.RatingState {
	converted := &domain.RatingState{
		ID:                         r.ID,
		PlayerID:                   r.PlayerID,
		IsBenchmark:                r.IsBenchmark,
		Rating:                     r.Rating,
		Reliability:                r.RatingReliability,
		ActualRating:               r.ActualRating,
		FinalRating:                r.FinalRating,
		BenchmarkRating:            r.BenchmarkRating,
		CompetitiveMatchPct:        r.CompetitiveMatchPct,
		RoutineMatchPct:            r.RoutineMatchPct,
		DecisiveMatchPct:           r.DecisiveMatchPct,
		CompetitiveMatchPctDoubles: r.CompetitiveMatchPctDoubles,
		DoublesRating:              r.DoublesRating,
		DoublesReliability:         r.DoublesReliability,
		FinalDoublesRating:         r.FinalDoublesRating,
		DoublesBenchmarkRating:     r.DoublesBenchmarkRating,
	}
	if r.ActiveSinglesResults != nil {
		converted.ActiveSinglesResults = *r.ActiveSinglesResults
	}
	if r.ActiveDoublesResults != nil {
		converted.ActiveDoublesResults = *r.ActiveDoublesResults
	}
	return converted
}

func convertSubRatingsFromDomain(s *domain.SubRatings) model.SubRatings {
	return model.SubRatings{
		PlayerRatingID:   s.PlayerRatingID,
		ResultCount:      int64(s.ResultCount),
		HardCourt:        s.HardCourt,
		HardCount:        int64(s.HardCount),
		ClayCourt:        s.ClayCourt,
		ClayCount:        int64(s.ClayCount),
		GrassCourt:       s.GrassCourt,
		GrassCount:       int64(s.GrassCount),
		OneMonth:         s.OneMonth,
		OneCount:         int64(s.OneCount),
		ThreeMonth:       s.ThreeMonth,
		ThreeCount:       int64(s.ThreeCount),
		SixWeek:          s.SixWeek,
		SixCount:         int64(s.SixCount),
		EightWeek:        s.EightWeek,
		EightCount:       int64(s.EightCount),
		GrandSlamMasters: s.GrandSlamMasters,
		GrandSlamCount:   int64(s.GrandSlamCount),
	}
}
