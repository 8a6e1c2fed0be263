package rating

import (
	"math"
	"strconv"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

// Top-of-curve anchors. A rating at or above the highest whole level
// interpolates from a fixed three-quarter point instead of its floor.
const (
	maleCurveTopLevel    = 16
	maleCurveTopAnchor   = 15.75
	femaleCurveTopLevel  = 13
	femaleCurveTopAnchor = 12.75
	maleSmoothingStart   = 14.5
	femaleSmoothingStart = 11.5
	fullReliability      = 10.0
)

// curveCorrection interpolates the college and non-college correction
// curves at the given rating and blends them by the player's exposure to
// the college population.
func curveCorrection(curve rules.NormalizationCurve, gender domain.Gender, rating, collegeFraction float64) float64 {
	low := math.Floor(rating)
	high := math.Ceil(rating)
	var collegeTable, nationalTable map[string]float64
	anchor := low
	if gender == domain.GenderMale {
		collegeTable, nationalTable = curve.CollegeMale, curve.NonCollegeMale
		if low >= maleCurveTopLevel {
			anchor = maleCurveTopAnchor
		}
	} else {
		collegeTable, nationalTable = curve.CollegeFemale, curve.NonCollegeFemale
		if low >= femaleCurveTopLevel {
			anchor = femaleCurveTopAnchor
		}
	}
	collegeAdj := interpolateCurve(collegeTable, low, high, rating, anchor)
	nationalAdj := interpolateCurve(nationalTable, low, high, rating, anchor)
	return collegeAdj + (1-collegeFraction)*(nationalAdj-collegeAdj)
}

func interpolateCurve(table map[string]float64, low, high, rating, anchor float64) float64 {
	floorValue := rules.CurveValue(table, levelKey(low))
	ceilValue := rules.CurveValue(table, levelKey(high))
	return floorValue + (rating-anchor)*(ceilValue-floorValue)
}

func levelKey(level float64) string {
	return strconv.Itoa(int(level))
}

// smoothRating damps ratings near the top of the scale in proportion to
// how unreliable they are, and floors everything else at the bottom of the
// scale.
func smoothRating(gender domain.Gender, reliability, rating float64) float64 {
	if gender == domain.GenderMale && rating > maleSmoothingStart && reliability < fullReliability {
		return (rating-maleSmoothingStart)*(reliability/fullReliability) + maleSmoothingStart
	}
	if gender == domain.GenderFemale && rating > femaleSmoothingStart && reliability < fullReliability {
		return (rating-femaleSmoothingStart)*(reliability/fullReliability) + femaleSmoothingStart
	}
	if rating < levelFloor {
		return levelFloor
	}
	return rating
}

// applyCorrection shifts every present sub-rating by the same curve
// correction as the main rating, then smooths each the same way.
func applyCorrection(sub *domain.SubRatings, gender domain.Gender, reliability, correction float64) {
	for _, v := range sub.Values() {
		if v == nil {
			continue
		}
		*v = smoothRating(gender, reliability, *v+correction)
	}
}
