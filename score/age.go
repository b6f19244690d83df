package score

import (
	"math"
	"math/rand"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// Composite weights of the four factor sub-scores.
const (
	HRVCoefficient      = 0.30
	RHRCoefficient      = 0.25
	ExerciseCoefficient = 0.25
	WeightCoefficient   = 0.20
)

// optimalWeightLbs is tuned for the 18-25 age bracket the demo targets.
const optimalWeightLbs = 145.0

// HRVScore maps a mean heart-rate variability (ms) to a 0-100 sub-score.
// HRV naturally declines with age, so the expected baseline is age-adjusted;
// values above the baseline are rewarded up to the cap.
func HRVScore(mean float64, chronologicalAge int) float64 {
	expected := math.Max(20, 60-float64(chronologicalAge-20)*0.8)
	return clamp(0, 100, mean/expected*85)
}

// RHRScore maps a mean resting heart rate (bpm) to a 0-100 sub-score.
// Lower is better, with a diminishing penalty at the extremes.
func RHRScore(mean float64) float64 {
	switch {
	case mean <= 55:
		return 100
	case mean <= 70:
		return 80 - ((mean-55)/15)*30
	default:
		return math.Max(20, 50-(mean-70))
	}
}

// ExerciseScore maps mean exercise minutes per day to a 0-100 sub-score.
// Thresholds follow the WHO 150-minutes-per-week guidance: ~21 min/day
// minimum, 30 min/day optimal.
func ExerciseScore(mean float64) float64 {
	switch {
	case mean >= 30:
		return 100
	case mean >= 20:
		return 70 + ((mean-20)/10)*30
	default:
		return (mean / 20) * 70
	}
}

// WeightScore maps a mean body weight (lbs) to a 0-100 sub-score by
// deviation from the optimal weight.
func WeightScore(mean float64) float64 {
	deviation := math.Abs(mean - optimalWeightLbs)
	switch {
	case deviation <= 5:
		return 100
	case deviation <= 15:
		return 80 - ((deviation-5)/10)*30
	default:
		return math.Max(30, 50-(deviation-15))
	}
}

// CompositeScore is the weighted overall score of the four factors.
func CompositeScore(hrv, rhr, exercise, weight float64) float64 {
	return hrv*HRVCoefficient + rhr*RHRCoefficient + exercise*ExerciseCoefficient + weight*WeightCoefficient
}

// biologicalAge maps the composite score to an age estimate through three
// linear bands: up to 8 years younger above 85, up to 5 years older between
// 50 and 85, and 5 to 15 years older below 50.
func biologicalAge(overall float64, chronologicalAge int) float64 {
	age := float64(chronologicalAge)
	switch {
	case overall >= 85:
		return age - (overall-85)/15*8
	case overall >= 50:
		return age + (85-overall)/35*5
	default:
		return age + 5 + (50-overall)/50*10
	}
}

// BiologicalAge derives a composite age estimate from the four metric
// series. It is deterministic for a given input and never errors: an empty
// series contributes a 0 mean and a 0 sub-score, which deliberately drags
// the composite down instead of failing.
func BiologicalAge(hrv, rhr, exercise, weight []schema.HealthSample, chronologicalAge int) schema.BiologicalAgeResult {
	hrvMean := Mean(hrv)
	rhrMean := Mean(rhr)
	exerciseMean := Mean(exercise)
	weightMean := Mean(weight)

	var hrvScore, rhrScore, exerciseScore, weightScore float64
	if len(hrv) > 0 {
		hrvScore = HRVScore(hrvMean, chronologicalAge)
	}
	if len(rhr) > 0 {
		rhrScore = RHRScore(rhrMean)
	}
	if len(exercise) > 0 {
		exerciseScore = ExerciseScore(exerciseMean)
	}
	if len(weight) > 0 {
		weightScore = WeightScore(weightMean)
	}

	overall := CompositeScore(hrvScore, rhrScore, exerciseScore, weightScore)

	bioAge := round1(biologicalAge(overall, chronologicalAge))
	difference := round1(bioAge - float64(chronologicalAge))

	band := InterpretationBand(difference)
	keys := RecommendationKeys(hrvMean, rhrScore, exerciseScore, weightScore)

	return schema.BiologicalAgeResult{
		BiologicalAge:    bioAge,
		ChronologicalAge: chronologicalAge,
		AgeDifference:    difference,
		OverallScore:     round1(overall),
		Factors: schema.AgeFactors{
			HRV:      schema.AgeFactor{Score: round1(hrvScore), Impact: Impact(hrvScore)},
			RHR:      schema.AgeFactor{Score: round1(rhrScore), Impact: Impact(rhrScore)},
			Exercise: schema.AgeFactor{Score: round1(exerciseScore), Impact: Impact(exerciseScore)},
			Weight:   schema.AgeFactor{Score: round1(weightScore), Impact: Impact(weightScore)},
		},
		Interpretation:     InterpretationMessages[band],
		Recommendations:    recommendationTexts(keys),
		InterpretationBand: band,
		RecommendationKeys: keys,
	}
}

// DefaultChronologicalAge returns a synthetic demo age in the 18-25 bracket
// for callers that do not supply a real one. Scoring with a defaulted age is
// not deterministic across calls.
func DefaultChronologicalAge(rng *rand.Rand) int {
	return 18 + rng.Intn(8)
}
