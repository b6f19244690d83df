package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

func series(values ...float64) []schema.HealthSample {
	samples := make([]schema.HealthSample, len(values))
	for i, v := range values {
		samples[i] = schema.HealthSample{Value: v}
	}
	return samples
}

func TestBiologicalAgeHealthyTwentyTwoYearOld(t *testing.T) {
	result := BiologicalAge(
		series(58),
		series(52),
		series(45),
		series(145),
		22,
	)

	assert.Equal(t, 100.0, result.Factors.Weight.Score)
	assert.Equal(t, 100.0, result.Factors.Exercise.Score)
	assert.Equal(t, 100.0, result.Factors.RHR.Score)
	assert.Equal(t, "84.42", fmt.Sprintf("%.2f", HRVScore(58, 22)))
	assert.Equal(t, 84.4, result.Factors.HRV.Score)

	assert.Equal(t, 95.3, result.OverallScore)
	assert.Equal(t, 16.5, result.BiologicalAge)
	assert.Equal(t, -5.5, result.AgeDifference)
	assert.Equal(t, 22, result.ChronologicalAge)

	assert.Equal(t, BandMuchYounger, result.InterpretationBand)
	assert.Equal(t, InterpretationMessages[BandMuchYounger], result.Interpretation)

	// HRV mean is below 60, so the HRV recommendation fires even though
	// the HRV sub-score is excellent.
	assert.Equal(t, []string{RecommendationHRV}, result.RecommendationKeys)
	assert.Equal(t, schema.ImpactExcellent, result.Factors.HRV.Impact)
}

func TestBiologicalAgeDeterministic(t *testing.T) {
	hrv := series(48, 52, 61)
	rhr := series(58, 62)
	exercise := series(25, 31, 18)
	weight := series(151, 152)

	first := BiologicalAge(hrv, rhr, exercise, weight, 24)
	second := BiologicalAge(hrv, rhr, exercise, weight, 24)

	assert.Equal(t, first, second)
}

func TestBiologicalAgeEmptySeries(t *testing.T) {
	result := BiologicalAge(nil, nil, nil, nil, 22)

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 0.0, result.Factors.HRV.Score)
	assert.Equal(t, 0.0, result.Factors.RHR.Score)
	assert.Equal(t, 0.0, result.Factors.Exercise.Score)
	assert.Equal(t, 0.0, result.Factors.Weight.Score)

	// score < 50 band: 5 to 15 years older
	assert.Equal(t, 37.0, result.BiologicalAge)
	assert.Equal(t, 15.0, result.AgeDifference)
	assert.Equal(t, BandMuchOlder, result.InterpretationBand)

	assert.Equal(t,
		[]string{RecommendationHRV, RecommendationRHR, RecommendationExercise, RecommendationWeight},
		result.RecommendationKeys)
}

func TestHRVScoreMonotonicBelowBaseline(t *testing.T) {
	previous := -1.0
	for _, mean := range []float64{10, 20, 30, 40, 50} {
		current := HRVScore(mean, 30)
		assert.Greater(t, current, previous)
		previous = current
	}
}

func TestHRVScoreCappedAtHundred(t *testing.T) {
	assert.Equal(t, 100.0, HRVScore(200, 22))
}

func TestRHRScoreBands(t *testing.T) {
	cases := []struct {
		mean     float64
		expected float64
	}{
		{50, 100},
		{55, 100},
		{62.5, 65},
		{70, 50},
		{71, 49},
		{100, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, RHRScore(c.mean), "mean %v", c.mean)
	}
}

func TestExerciseScoreBands(t *testing.T) {
	cases := []struct {
		mean     float64
		expected float64
	}{
		{45, 100},
		{30, 100},
		{25, 85},
		{20, 70},
		{10, 35},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, ExerciseScore(c.mean), "mean %v", c.mean)
	}
}

func TestWeightScoreBands(t *testing.T) {
	cases := []struct {
		mean     float64
		expected float64
	}{
		{145, 100},
		{150, 100},
		{155, 65},
		{160, 50},
		{165, 45},
		{200, 30},
		{130, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, WeightScore(c.mean), "mean %v", c.mean)
	}
}

func TestMeanEmptySeries(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]schema.HealthSample{}))
}
