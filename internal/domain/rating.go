package domain

// RatingState is a player's mutable rating record. It is loaded once per
// run, mutated across iterations and written back at the end.
//
// Rating and Reliability are the working singles values the current
// iteration reads; Calculated* hold the values staged during an iteration
// and are published only after every player has been evaluated, so that
// iteration i+1 never observes a value written within iteration i+1 itself.
type RatingState struct {
	ID       int64
	PlayerID int64

	IsBenchmark     bool
	Rating          float64
	Reliability     float64
	ActualRating    float64
	FinalRating     float64
	BenchmarkRating float64

	CompetitiveMatchPct        float64
	RoutineMatchPct            float64
	DecisiveMatchPct           float64
	CompetitiveMatchPctDoubles float64

	DoublesRating          float64
	DoublesReliability     float64
	FinalDoublesRating     float64
	DoublesBenchmarkRating float64

	ActiveSinglesResults string
	ActiveDoublesResults string

	SubRatings *SubRatings

	// staged values, never persisted
	CalculatedRating      float64
	CalculatedReliability float64
	CalculatedSubRatings  *SubRatings
	AssignedRating        float64
	AssignedReliability   float64
	AssignedOK            bool
}

// SubRatings are ratings restricted to a slice of results. A nil value
// means the slice had no weighted matches. The fields are enumerated
// explicitly; the normalization correction walks this exact list.
type SubRatings struct {
	PlayerRatingID int64
	ResultCount    int

	HardCourt  *float64
	HardCount  int
	ClayCourt  *float64
	ClayCount  int
	GrassCourt *float64
	GrassCount int

	OneMonth   *float64
	OneCount   int
	ThreeMonth *float64
	ThreeCount int
	SixWeek    *float64
	SixCount   int
	EightWeek  *float64
	EightCount int

	GrandSlamMasters *float64
	GrandSlamCount   int
}

// Values returns pointers to every sub-rating value in a fixed order so
// corrections can be applied by direct reference.
func (s *SubRatings) Values() []*float64 {
	return []*float64{
		s.HardCourt, s.ClayCourt, s.GrassCourt,
		s.OneMonth, s.ThreeMonth, s.SixWeek, s.EightWeek,
		s.GrandSlamMasters,
	}
}
