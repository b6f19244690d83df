package score

import "github.com/tsnevan4204/health-app-sub000/schema"

// Impact converts a 0-100 sub-score into its descriptive label.
func Impact(score float64) string {
	switch {
	case score >= 80:
		return schema.ImpactExcellent
	case score >= 65:
		return schema.ImpactGood
	case score >= 50:
		return schema.ImpactAverage
	case score >= 35:
		return schema.ImpactBelowAverage
	default:
		return schema.ImpactPoor
	}
}

// Interpretation bands, keyed by the age difference thresholds -3/-1/+1/+3.
const (
	BandMuchYounger = "much_younger"
	BandYounger     = "younger"
	BandOnTrack     = "on_track"
	BandOlder       = "older"
	BandMuchOlder   = "much_older"
)

// InterpretationMessages holds the fixed English text per band. The API
// layer localizes these through the i18n bundle using the band as key.
var InterpretationMessages = map[string]string{
	BandMuchYounger: "Excellent health! Your body is aging slower than average.",
	BandYounger:     "You are healthier than average for your age.",
	BandOnTrack:     "Your biological age matches your chronological age.",
	BandOlder:       "Your body shows signs of aging slightly faster than average.",
	BandMuchOlder:   "Your health metrics suggest accelerated aging. Consider lifestyle changes.",
}

// InterpretationBand selects the message band for an age difference.
func InterpretationBand(ageDifference float64) string {
	switch {
	case ageDifference <= -3:
		return BandMuchYounger
	case ageDifference <= -1:
		return BandYounger
	case ageDifference <= 1:
		return BandOnTrack
	case ageDifference <= 3:
		return BandOlder
	default:
		return BandMuchOlder
	}
}

// Recommendation keys per factor, plus the pair returned when nothing
// needs improvement.
const (
	RecommendationHRV      = "hrv"
	RecommendationRHR      = "rhr"
	RecommendationExercise = "exercise"
	RecommendationWeight   = "weight"
	RecommendationMaintain = "maintain"
	RecommendationOptimize = "optimize"
)

// RecommendationMessages holds the fixed English text per key.
var RecommendationMessages = map[string]string{
	RecommendationHRV:      "Improve heart rate variability with meditation, better sleep and stress management.",
	RecommendationRHR:      "Lower your resting heart rate with regular cardiovascular exercise.",
	RecommendationExercise: "Aim for at least 30 minutes of exercise every day.",
	RecommendationWeight:   "Work toward your optimal weight range with balanced nutrition.",
	RecommendationMaintain: "Keep up your current healthy habits to maintain your biological age.",
	RecommendationOptimize: "Fine-tune recovery with consistent sleep and hydration for further gains.",
}

// RecommendationKeys accumulates one key per factor below its threshold.
// HRV is judged on the raw mean while the others are judged on their
// sub-scores; that asymmetry is part of the product's tuning and is kept.
// When nothing triggers, the maintain/optimize pair is returned instead of
// an empty list.
func RecommendationKeys(hrvMean, rhrScore, exerciseScore, weightScore float64) []string {
	keys := []string{}
	if hrvMean < 60 {
		keys = append(keys, RecommendationHRV)
	}
	if rhrScore < 60 {
		keys = append(keys, RecommendationRHR)
	}
	if exerciseScore < 70 {
		keys = append(keys, RecommendationExercise)
	}
	if weightScore < 70 {
		keys = append(keys, RecommendationWeight)
	}
	if len(keys) == 0 {
		return []string{RecommendationMaintain, RecommendationOptimize}
	}
	return keys
}

func recommendationTexts(keys []string) []string {
	texts := make([]string, len(keys))
	for i, k := range keys {
		texts[i] = RecommendationMessages[k]
	}
	return texts
}
