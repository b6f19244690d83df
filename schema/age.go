package schema

// Impact labels for a factor sub-score.
const (
	ImpactExcellent    = "Excellent"
	ImpactGood         = "Good"
	ImpactAverage      = "Average"
	ImpactBelowAverage = "Below Average"
	ImpactPoor         = "Poor"
)

// AgeFactor is the contribution of a single metric to a biological age
// estimate: a 0-100 sub-score and its descriptive label.
type AgeFactor struct {
	Score  float64 `json:"score" bson:"score"`
	Impact string  `json:"impact" bson:"impact"`
}

// AgeFactors breaks a biological age estimate down per metric.
type AgeFactors struct {
	HRV      AgeFactor `json:"hrv" bson:"hrv"`
	RHR      AgeFactor `json:"rhr" bson:"rhr"`
	Exercise AgeFactor `json:"exercise" bson:"exercise"`
	Weight   AgeFactor `json:"weight" bson:"weight"`
}

// BiologicalAgeResult is a derived, stateless estimate recomputed on demand
// from the current sample sets. It is never mutated; a new scoring run
// supersedes the previous result.
//
// InterpretationBand and RecommendationKeys identify the fixed messages
// chosen for Interpretation and Recommendations. They are kept off the wire
// and exist so callers can localize the texts.
type BiologicalAgeResult struct {
	BiologicalAge      float64    `json:"biologicalAge" bson:"biological_age"`
	ChronologicalAge   int        `json:"chronologicalAge" bson:"chronological_age"`
	AgeDifference      float64    `json:"ageDifference" bson:"age_difference"`
	OverallScore       float64    `json:"overallScore" bson:"overall_score"`
	Factors            AgeFactors `json:"factors" bson:"factors"`
	Interpretation     string     `json:"interpretation" bson:"interpretation"`
	Recommendations    []string   `json:"recommendations" bson:"recommendations"`
	InterpretationBand string     `json:"-" bson:"-"`
	RecommendationKeys []string   `json:"-" bson:"-"`
}
