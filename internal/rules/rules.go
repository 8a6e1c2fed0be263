// Package rules holds the tunable coefficients, thresholds and feature
// toggles the rating engine runs with, plus the normalization curve lookup
// tables. A rule set is loaded once per rating type and treated as
// immutable for the duration of a run.
package rules

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/courtrank/ratingengine/internal/domain"
)

// Set is one rule set (singles or doubles).
type Set struct {
	// ResultThreshold is the oldest result date still eligible. It is
	// stamped by the orchestrator at the start of a run.
	ResultThreshold time.Time `toml:"-"`

	NumberOfResults int     `toml:"number_of_results"`
	MaxReliability  float64 `toml:"max_reliability"`

	// ReliabilityWeight is the denominator weight in the singles player
	// reliability formula (W + sum) / W.
	ReliabilityWeight float64 `toml:"reliability_weight"`

	// Rating-delta bands for competitiveness classification and for the
	// extra eligible-result slots granted on lopsided matchups.
	MaxRatingDelta            float64 `toml:"max_rating_delta"`
	NormalMatchMaxRatingDelta float64 `toml:"normal_match_max_rating_delta"`
	CloseMatchMaxRatingDelta  float64 `toml:"close_match_max_rating_delta"`

	BestOfFiveSetReliability   float64 `toml:"best_of_five_set_reliability"`
	BestOfThreeSetReliability  float64 `toml:"best_of_three_set_reliability"`
	EightGameProSetReliability float64 `toml:"eight_game_pro_set_reliability"`
	MiniSetReliability         float64 `toml:"mini_set_reliability"`
	OneSetReliability          float64 `toml:"one_set_reliability"`

	LopsidedMatchReliability        float64 `toml:"lopsided_match_reliability"`
	LopsidedGameRatio               float64 `toml:"lopsided_game_ratio"`
	UnderdogMatchReliability        float64 `toml:"underdog_match_reliability"`
	CompetitiveUnderdogReliability  float64 `toml:"competitive_underdog_reliability"`
	CompetitivenessFactorMultiplier float64 `toml:"competitiveness_factor_multiplier"`
	BenchmarkMatchCoefficient       float64 `toml:"benchmark_match_coefficient"`
	InterpoolCoefficientCollege     float64 `toml:"interpool_coefficient_college"`
	InterpoolCoefficientCountry     float64 `toml:"interpool_coefficient_country"`
	DisconnectedPoolThreshold       int     `toml:"disconnected_pool_threshold"`
	EligibleResultWeightThreshold   float64 `toml:"eligible_result_weight_threshold"`

	MaleScaleGraduationHigh           float64 `toml:"male_scale_graduation_high"`
	MaleScaleGraduationLow            float64 `toml:"male_scale_graduation_low"`
	FemaleScaleGraduationHigh         float64 `toml:"female_scale_graduation_high"`
	FemaleScaleGraduationLow          float64 `toml:"female_scale_graduation_low"`
	MaleCollegeScaleGraduationHigh    float64 `toml:"male_college_scale_graduation_high"`
	MaleCollegeScaleGraduationLow     float64 `toml:"male_college_scale_graduation_low"`
	FemaleCollegeScaleGraduationHigh  float64 `toml:"female_college_scale_graduation_high"`
	FemaleCollegeScaleGraduationLow   float64 `toml:"female_college_scale_graduation_low"`
	MaleCollegeScaleLossPercentage    float64 `toml:"male_college_scale_loss_percentage"`
	FemaleCollegeScaleLossPercentage  float64 `toml:"female_college_scale_loss_percentage"`
	MaleScaleLossPercentageMaxLevel   float64 `toml:"male_scale_loss_percentage_max_level"`
	FemaleScaleLossPercentageMaxLevel float64 `toml:"female_scale_loss_percentage_max_level"`

	// doubles only
	PartnerSpreadAdjustmentFactor          float64 `toml:"partner_spread_adjustment_factor"`
	MinPartnerFrequencyFactor              float64 `toml:"min_partner_frequency_factor"`
	SinglesWeightOnDoubles                 float64 `toml:"singles_weight_on_doubles"`
	SinglesWeightReliabilityThreshold      float64 `toml:"singles_weight_reliability_threshold"`
	ProvisionalSinglesReliabilityThreshold float64 `toml:"provisional_singles_reliability_threshold"`
	ProvisionalDoublesReliabilityThreshold float64 `toml:"provisional_doubles_reliability_threshold"`
	BenchmarkTrailSpan                     float64 `toml:"benchmark_trail_span"`

	EnableOpponentRatingReliability       bool `toml:"enable_opponent_rating_reliability"`
	EnableMatchFormatReliability          bool `toml:"enable_match_format_reliability"`
	EnableMatchFrequencyReliability       bool `toml:"enable_match_frequency_reliability"`
	EnableMatchCompetitivenessCoefficient bool `toml:"enable_match_competitiveness_coefficient"`
	EnableBenchmarkMatchCoefficient       bool `toml:"enable_benchmark_match_coefficient"`
	EnableInterpoolCoefficient            bool `toml:"enable_interpool_coefficient"`
	EnablePartnerFrequencyReliability     bool `toml:"enable_partner_frequency_reliability"`
	EnableDynamicRatingCap                bool `toml:"enable_dynamic_rating_cap"`
	EnableCompetitivenessFilter           bool `toml:"enable_competitiveness_filter"`

	// Data-import tags whose results count toward the college population
	// fraction used by the normalization blend.
	CollegeImportTypes    []int64  `toml:"college_import_types"`
	CollegeImportSubTypes []string `toml:"college_import_sub_types"`

	Curve NormalizationCurve `toml:"curve"`
}

// NormalizationCurve maps integer rating levels (as strings, matching the
// stored document format) to correction values for the college and
// non-college populations, per gender.
type NormalizationCurve struct {
	CollegeMale      map[string]float64 `toml:"college_male"`
	NonCollegeMale   map[string]float64 `toml:"non_college_male"`
	CollegeFemale    map[string]float64 `toml:"college_female"`
	NonCollegeFemale map[string]float64 `toml:"non_college_female"`
}

// Config bundles the per-type rule sets as decoded from rules.toml.
type Config struct {
	Singles Set `toml:"singles"`
	Doubles Set `toml:"doubles"`
}

// Default returns the built-in rule set, mirroring the production
// defaults. All weighting factors are enabled; the dynamic-rating cap and
// the doubles competitiveness filter are not.
func Default(domain.RatingType) Set {
	return Set{
		ResultThreshold:   time.Now().AddDate(0, -12, 0),
		NumberOfResults:   30,
		MaxReliability:    10,
		ReliabilityWeight: 8,

		MaxRatingDelta:            2.5,
		NormalMatchMaxRatingDelta: 2.5,
		CloseMatchMaxRatingDelta:  0.16,

		BestOfFiveSetReliability:   1.0,
		BestOfThreeSetReliability:  1.0,
		EightGameProSetReliability: 0.7,
		MiniSetReliability:         0.4,
		OneSetReliability:          0,

		LopsidedMatchReliability:        0.25,
		LopsidedGameRatio:               0.13,
		UnderdogMatchReliability:        0,
		CompetitiveUnderdogReliability:  0.25,
		CompetitivenessFactorMultiplier: 0.3,
		BenchmarkMatchCoefficient:       0.1,
		InterpoolCoefficientCollege:     1.0,
		InterpoolCoefficientCountry:     1.0,
		DisconnectedPoolThreshold:       3,
		EligibleResultWeightThreshold:   0.001,

		MaleScaleGraduationHigh:           1.5,
		MaleScaleGraduationLow:            1.5,
		FemaleScaleGraduationHigh:         1.5,
		FemaleScaleGraduationLow:          1.5,
		MaleCollegeScaleGraduationHigh:    1.5,
		MaleCollegeScaleGraduationLow:     1.5,
		FemaleCollegeScaleGraduationHigh:  1.5,
		FemaleCollegeScaleGraduationLow:   1.5,
		MaleCollegeScaleLossPercentage:    1,
		FemaleCollegeScaleLossPercentage:  1,
		MaleScaleLossPercentageMaxLevel:   10,
		FemaleScaleLossPercentageMaxLevel: 10,

		PartnerSpreadAdjustmentFactor:          0.21,
		MinPartnerFrequencyFactor:              0.60,
		SinglesWeightOnDoubles:                 0.60,
		SinglesWeightReliabilityThreshold:      0.1,
		ProvisionalSinglesReliabilityThreshold: 0.1,
		ProvisionalDoublesReliabilityThreshold: 0.1,
		BenchmarkTrailSpan:                     0.5,

		EnableOpponentRatingReliability:       true,
		EnableMatchFormatReliability:          true,
		EnableMatchFrequencyReliability:       true,
		EnableMatchCompetitivenessCoefficient: true,
		EnableBenchmarkMatchCoefficient:       true,
		EnableInterpoolCoefficient:            true,
		EnablePartnerFrequencyReliability:     true,
		EnableDynamicRatingCap:                false,
		EnableCompetitivenessFilter:           false,

		CollegeImportTypes:    []int64{6, 8, 14, 16, 36, 37, 24, 7},
		CollegeImportSubTypes: []string{"LTATour", "AustraliaAMT"},
	}
}

// Load decodes the rule file on top of the defaults, so an absent key
// keeps its built-in value.
func Load(path string) (Config, error) {
	cfg := Config{
		Singles: Default(domain.RatingSingles),
		Doubles: Default(domain.RatingDoubles),
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CurveValue looks up a correction for an integer level. Level zero and
// levels missing from the table contribute no correction.
func CurveValue(table map[string]float64, level string) float64 {
	if level == "0" {
		return 0
	}
	return table[level]
}
