package rating

import (
	"time"

	"github.com/courtrank/ratingengine/internal/domain"
)

// WeightFactors are the multiplicative components of one match weight.
// MatchWeight is their product truncated to 5 decimal places.
type WeightFactors struct {
	OpponentReliability float64
	MatchFormat         float64
	Frequency           float64
	Competitiveness     float64
	Benchmark           float64
	Interpool           float64
	MatchWeight         float64
}

// Sample is the per-(player, result) outcome of the dynamic rating and
// weight calculations. Samples live for one iteration and are folded into
// the aggregate rating, reliability and sub-ratings.
type Sample struct {
	ResultID         int64
	Rating           float64
	Weight           float64
	Factors          WeightFactors
	Surface          domain.Surface
	Date             time.Time
	MastersOrSlam    bool
	AgainstBenchmark bool
}
